package handler

import (
	"errors"
	"net/http"

	"github.com/monyskow/shift-selector/backend/internal/domain"
	"github.com/monyskow/shift-selector/backend/internal/shifttime"
)

func (h *Handler) GetAllShifts(w http.ResponseWriter, r *http.Request) {
	h.successResponse(w, r, "获取所有班次成功", h.repository.GetAllShifts())
}

func (h *Handler) ResolveShift(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name       string `json:"name"`
		Start      string `json:"start" validate:"required"`
		End        string `json:"end" validate:"required"`
		DateOffset int    `json:"dateOffset"`
		Timezone   string `json:"timezone"`
		Date       string `json:"date"`
	}

	if err := h.readJSON(r, &req); err != nil {
		h.badRequest(w, r, err)
		return
	}
	if err := h.validate.Struct(req); err != nil {
		h.badRequest(w, r, err)
		return
	}

	shift := &domain.ShiftDefinition{
		Name:       req.Name,
		Start:      req.Start,
		End:        req.End,
		DateOffset: req.DateOffset,
	}

	interval, err := h.resolver.ResolveShiftInterval(shift, h.timezoneOrDefault(req.Timezone), req.Date)
	if err != nil {
		h.resolveError(w, r, err)
		return
	}

	h.successResponse(w, r, "解析班次区间成功", interval)
}

func (h *Handler) GetShiftInterval(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftPresetCtx).(*domain.ShiftDefinition)

	timezone := h.timezoneOrDefault(r.URL.Query().Get("timezone"))
	date := r.URL.Query().Get("date")

	interval, err := h.resolver.ResolveShiftInterval(shift, timezone, date)
	if err != nil {
		h.resolveError(w, r, err)
		return
	}

	h.successResponse(w, r, "解析班次区间成功", interval)
}

func (h *Handler) GetShiftActive(w http.ResponseWriter, r *http.Request) {
	shift := r.Context().Value(ShiftPresetCtx).(*domain.ShiftDefinition)

	timezone := h.timezoneOrDefault(r.URL.Query().Get("timezone"))
	date := r.URL.Query().Get("date")

	active, err := h.resolver.IsShiftActive(shift, timezone, date)
	if err != nil {
		h.resolveError(w, r, err)
		return
	}

	h.successResponse(w, r, "查询班次状态成功", struct {
		Active bool `json:"active"`
	}{Active: active})
}

func (h *Handler) timezoneOrDefault(timezone string) string {
	if timezone == "" {
		return h.config.Panel.DefaultTimezone
	}
	return timezone
}

// 解析错误是一个封闭集合，已知类别直接把错误信息返回给用户，
// 其余的按服务器内部错误处理
func (h *Handler) resolveError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, shifttime.ErrInvalidShift),
		errors.Is(err, shifttime.ErrInvalidTimezone),
		errors.Is(err, shifttime.ErrInvalidTimeFormat),
		errors.Is(err, shifttime.ErrInvalidTimeValue),
		errors.Is(err, shifttime.ErrInvalidHour),
		errors.Is(err, shifttime.ErrInvalidMinute):
		h.errorResponse(w, r, err.Error())
	default:
		h.internalServerError(w, r, err)
	}
}
