package tools

import (
	"context"

	"time-range-parser/internal/agent"
	"time-range-parser/internal/timerange"
	pkgLog "time-range-parser/pkg/log"
)

type GetDSTStatusTool struct {
	uc timerange.UseCase
	l  pkgLog.Logger
}

func NewGetDSTStatusTool(uc timerange.UseCase, l pkgLog.Logger) *GetDSTStatusTool {
	return &GetDSTStatusTool{uc: uc, l: l}
}

func (t *GetDSTStatusTool) Name() string {
	return "get_dst_status"
}

func (t *GetDSTStatusTool) Description() string {
	return "Report whether daylight saving time is active in a timezone, with its offsets and the surrounding transitions."
}

func (t *GetDSTStatusTool) Parameters() map[string]interface{} {
	return objectSchema(map[string]interface{}{
		"timezone": stringProp(timezoneDescription),
		"now_iso":  stringProp("Optional ISO-8601 instant to check instead of the current time."),
	})
}

type GetDSTStatusInput struct {
	Timezone string `json:"timezone"`
	NowISO   string `json:"now_iso"`
}

type GetDSTStatusOutput struct {
	Timezone        string  `json:"timezone"`
	IsDST           bool    `json:"is_dst"`
	DSTAbbreviation string  `json:"dst_abbreviation"`
	UTCOffset       string  `json:"utc_offset"`
	RawOffset       int     `json:"raw_offset"`
	DSTOffset       int     `json:"dst_offset"`
	DSTStart        *string `json:"dst_start"`
	DSTEnd          *string `json:"dst_end"`
	NextTransition  *string `json:"next_transition"`
	Source          string  `json:"source"`
}

func (t *GetDSTStatusTool) Execute(ctx context.Context, input map[string]interface{}) (interface{}, error) {
	var params GetDSTStatusInput
	if err := decodeInput(input, &params); err != nil {
		return nil, err
	}

	st, err := t.uc.DSTStatus(ctx, timerange.DSTStatusInput{
		Timezone: params.Timezone,
		NowISO:   params.NowISO,
	})
	if err != nil {
		return nil, err
	}

	return GetDSTStatusOutput{
		Timezone:        st.Timezone,
		IsDST:           st.IsDST,
		DSTAbbreviation: st.Abbreviation,
		UTCOffset:       st.UTCOffset,
		RawOffset:       st.RawOffset,
		DSTOffset:       st.DSTOffset,
		DSTStart:        formatOptionalTime(st.DSTStart),
		DSTEnd:          formatOptionalTime(st.DSTEnd),
		NextTransition:  formatOptionalTime(st.NextTransition),
		Source:          st.Source,
	}, nil
}

var _ agent.Tool = (*GetDSTStatusTool)(nil)
