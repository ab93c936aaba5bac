// tools_duration.go implements the MCP tools for duration parsing and
// rendering.
//
// Rejections are reported as structured results rather than tool errors: an
// LLM asking whether "1.5x" is a duration needs the reason, not a failure.
// Only malformed tool arguments produce MCP error results.

package mcp

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jpl-au/workdur/internal/duration"
	"github.com/jpl-au/workdur/internal/log"
	"github.com/jpl-au/workdur/internal/numeric"
	"github.com/jpl-au/workdur/internal/service"
)

// parse handles workdur_parse tool calls.
func (h *handlers) parse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	svc := h.service()

	p, err := getPattern(req, svc.Pattern())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	text := optionalString(req, "text")
	res := svc.ParseOptional(text, p)

	ev := log.Event("mcp:workdur_parse", "parse").Pattern(p.String())
	if text != nil {
		ev.Input(*text)
	}
	if res.IsValid {
		ev.Output(res.FormattedValue)
	}
	ev.Write(res.Err)

	return jsonResult(res)
}

// format handles workdur_format tool calls.
func (h *handlers) format(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	svc := h.service()

	minutes, ok, err := getInt64(req, "minutes")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		return mcp.NewToolResultError("minutes is required"), nil
	}

	p, err := getPattern(req, svc.Pattern())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	dayLength := svc.DayLength()
	if text := getString(req, "day_length", ""); text != "" {
		res := svc.Parse(text, numeric.Hour)
		if !res.IsValid {
			return mcp.NewToolResultError(fmt.Sprintf("day_length: %s", res.Reason)), nil
		}
		if res.ParsedValue.InMinutes() < 1 {
			return mcp.NewToolResultError(fmt.Sprintf("day_length: %v", numeric.ErrInvalidDayLength)), nil
		}
		dayLength = *res.ParsedValue
	}

	out := svc.FormatMinutes(minutes, p, dayLength)

	log.Event("mcp:workdur_format", "format").
		Input(strconv.FormatInt(minutes, 10)).
		Pattern(p.String()).
		Output(out).
		Detail("day_length", dayLength.InMinutes()).
		Write(nil)

	return jsonResult(map[string]any{
		"minutes":    minutes,
		"pattern":    p,
		"day_length": dayLength.InMinutes(),
		"formatted":  out,
	})
}

// export handles workdur_export tool calls.
func (h *handlers) export(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	svc := h.service()

	p, err := getPattern(req, svc.Pattern())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	var d *duration.Duration
	var input string

	if text := optionalString(req, "text"); text != nil {
		input = *text
		res := svc.Parse(*text, p)
		if !res.IsValid {
			log.Event("mcp:workdur_export", "export").Input(input).Pattern(p.String()).Write(res.Err)
			return jsonResult(map[string]any{"input": input, "days": nil, "reason": res.Reason})
		}
		d = res.ParsedValue
	} else {
		minutes, ok, err := getInt64(req, "minutes")
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		if !ok {
			return mcp.NewToolResultError("text or minutes is required"), nil
		}
		v, err := duration.NewChecked(duration.Parts{Minutes: minutes})
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}
		input = strconv.FormatInt(minutes, 10)
		d = &v
	}

	days := svc.Export(d)

	log.Event("mcp:workdur_export", "export").Input(input).Pattern(p.String()).Output(*days).Write(nil)

	return jsonResult(map[string]any{"input": input, "minutes": d.InMinutes(), "days": days})
}

// explain handles workdur_explain tool calls.
func (h *handlers) explain(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	svc := h.service()

	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required"), nil //nolint:nilerr
	}

	p, err := getPattern(req, svc.Pattern())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	ex := service.Explain(svc, text, p)

	log.Event("mcp:workdur_explain", "explain").Input(text).Pattern(p.String()).Output(ex.Result).Write(ex.Err)

	return jsonResult(ex)
}

// compare handles workdur_compare tool calls.
func (h *handlers) compare(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) { //nolint:revive // ctx for future use
	svc := h.service()

	text, err := req.RequireString("text")
	if err != nil {
		return mcp.NewToolResultError("text is required"), nil //nolint:nilerr
	}

	days, ok, err := getInt64(req, "days")
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	if !ok {
		return mcp.NewToolResultError("days is required"), nil
	}

	p, err := getPattern(req, svc.Pattern())
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	c, err := svc.Compare(text, days, p)

	log.Event("mcp:workdur_compare", "compare").
		Input(text).
		Pattern(p.String()).
		Detail("days", days).
		Write(err)

	if err != nil {
		return jsonResult(map[string]any{"text": text, "days": days, "reason": err.Error()})
	}
	return jsonResult(map[string]any{"text": text, "days": days, "comparison": c})
}
