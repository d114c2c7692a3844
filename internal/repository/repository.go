package repository

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/monyskow/shift-selector/backend/internal/config"
	"github.com/monyskow/shift-selector/backend/internal/domain"
	"github.com/monyskow/shift-selector/backend/internal/shifttime"
)

var ErrShiftNotFound = errors.New("班次不存在")

// Repository 保存预设班次，启动时从配置解析一次，之后只读
type Repository struct {
	shifts []domain.ShiftDefinition
	byName map[string]*domain.ShiftDefinition
}

func NewRepository(cfg *config.Config) (*Repository, error) {
	var shifts []domain.ShiftDefinition
	if err := json.Unmarshal([]byte(cfg.Panel.Shifts), &shifts); err != nil {
		return nil, fmt.Errorf("无法解析预设班次配置: %w", err)
	}
	if len(shifts) == 0 {
		return nil, errors.New("预设班次配置不能为空")
	}

	repo := &Repository{
		shifts: shifts,
		byName: make(map[string]*domain.ShiftDefinition, len(shifts)),
	}

	// 启动时就用默认时区解析一遍每个预设，坏配置尽早暴露而不是等到请求时
	resolver := shifttime.NewResolver()
	for i := range repo.shifts {
		shift := &repo.shifts[i]
		if shift.Name == "" {
			return nil, fmt.Errorf("第 %d 个预设班次缺少名称", i+1)
		}
		if _, exists := repo.byName[shift.Name]; exists {
			return nil, fmt.Errorf("预设班次名称 %q 重复", shift.Name)
		}
		if _, err := resolver.ResolveShiftInterval(shift, cfg.Panel.DefaultTimezone, ""); err != nil {
			return nil, fmt.Errorf("预设班次 %q 无效: %w", shift.Name, err)
		}
		repo.byName[shift.Name] = shift
	}

	return repo, nil
}

func (r *Repository) GetAllShifts() []domain.ShiftDefinition {
	return r.shifts
}

func (r *Repository) GetShiftByName(name string) (*domain.ShiftDefinition, error) {
	shift, exists := r.byName[name]
	if !exists {
		return nil, ErrShiftNotFound
	}
	return shift, nil
}
