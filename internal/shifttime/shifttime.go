package shifttime

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/monyskow/shift-selector/backend/internal/domain"
)

// 错误类别是一个封闭集合，调用方应当通过 errors.Is 区分类别，而不是匹配错误信息
var (
	ErrInvalidShift      = errors.New("无效的班次定义")
	ErrInvalidTimezone   = errors.New("无效的时区")
	ErrInvalidTimeFormat = errors.New("无效的时间格式")
	ErrInvalidTimeValue  = errors.New("无效的时间数值")
	ErrInvalidHour       = errors.New("无效的小时")
	ErrInvalidMinute     = errors.New("无效的分钟")
)

const dateLayout = "2006-01-02"

// Resolver 负责把班次定义解析为绝对的 UTC 时间区间。
// 解析本身是纯函数，只有在未指定日期时才会读取时钟。
type Resolver struct {
	now func() time.Time
}

func NewResolver() *Resolver {
	return &Resolver{now: time.Now}
}

// NewResolverWithClock 允许在测试中注入固定的时钟
func NewResolverWithClock(now func() time.Time) *Resolver {
	return &Resolver{now: now}
}

// ResolveShiftInterval 把班次的开始和结束时间附着到锚定日期上，
// 并返回以 UTC 毫秒表示的绝对区间。
// 班次时间始终按照 timezone 指定的业务时区解释，与调用方所在的时区无关。
// selectedDate 为空时使用该时区下的当前日期。
func (r *Resolver) ResolveShiftInterval(shift *domain.ShiftDefinition, timezone string, selectedDate string) (*domain.ResolvedInterval, error) {
	if shift == nil || shift.Start == "" || shift.End == "" {
		return nil, fmt.Errorf("%w: 班次必须包含开始时间和结束时间", ErrInvalidShift)
	}
	if timezone == "" {
		return nil, fmt.Errorf("%w: 时区不能为空", ErrInvalidTimezone)
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTimezone, timezone)
	}

	// 确定锚定日期
	var (
		year  int
		month time.Month
		day   int
	)
	if selectedDate != "" {
		anchor, err := time.ParseInLocation(dateLayout, selectedDate, loc)
		if err != nil {
			return nil, fmt.Errorf("%w: 无法在时区 %q 下解析日期 %q", ErrInvalidTimezone, timezone, selectedDate)
		}
		year, month, day = anchor.Date()
	} else {
		year, month, day = r.now().In(loc).Date()
	}

	// 日期偏移使用公历日运算而不是加固定小时数，
	// 保证跨夏令时边界时仍然落在正确的日历日上
	if shift.DateOffset != 0 {
		year, month, day = time.Date(year, month, day+shift.DateOffset, 0, 0, 0, 0, time.UTC).Date()
	}

	startHour, startMinute, err := parseTimeOfDay(shift.Start)
	if err != nil {
		return nil, err
	}
	endHour, endMinute, err := parseTimeOfDay(shift.End)
	if err != nil {
		return nil, err
	}

	from := time.Date(year, month, day, startHour, startMinute, 0, 0, loc)
	to := time.Date(year, month, day, endHour, endMinute, 0, 0, loc)

	// 跨夜班次：结束时间落到下一个日历日
	// 注意这里是严格晚于，开始时间和结束时间相等时会得到零长度的区间
	if from.After(to) {
		to = time.Date(year, month, day+1, endHour, endMinute, 0, 0, loc)
	}

	return &domain.ResolvedInterval{
		From: from.UnixMilli(),
		To:   to.UnixMilli(),
	}, nil
}

// IsShiftActive 判断当前时刻是否落在班次区间内。
// 如果指定的日期不是该时区下的今天，则无论区间数值如何都返回 false，
// 防止历史日期的班次时间恰好覆盖当前时刻而被误判为活跃。
func (r *Resolver) IsShiftActive(shift *domain.ShiftDefinition, timezone string, selectedDate string) (bool, error) {
	interval, err := r.ResolveShiftInterval(shift, timezone, selectedDate)
	if err != nil {
		return false, err
	}

	now := r.now()

	if selectedDate != "" {
		// 时区和日期在 ResolveShiftInterval 中已经校验过
		loc, _ := time.LoadLocation(timezone)
		selected, _ := time.ParseInLocation(dateLayout, selectedDate, loc)

		selYear, selMonth, selDay := selected.Date()
		nowYear, nowMonth, nowDay := now.In(loc).Date()
		if selYear != nowYear || selMonth != nowMonth || selDay != nowDay {
			return false, nil
		}
	}

	nowMs := now.UnixMilli()
	return nowMs >= interval.From && nowMs <= interval.To, nil
}

func parseTimeOfDay(value string) (hour, minute int, err error) {
	parts := strings.Split(value, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: %q 应当为 HH:mm", ErrInvalidTimeFormat, value)
	}

	hour, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeValue, value)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeValue, value)
	}

	if hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidHour, hour)
	}
	if minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("%w: %d", ErrInvalidMinute, minute)
	}

	return hour, minute, nil
}
