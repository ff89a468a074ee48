// Package server exposes the mat dimension engine over a JSON HTTP API.
package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/iwvelando/mat-calc/internal/config"
	"github.com/iwvelando/mat-calc/internal/matcalc"
	"github.com/iwvelando/mat-calc/pkg/constants"
	"github.com/iwvelando/mat-calc/pkg/dimension"
	"github.com/iwvelando/mat-calc/pkg/output"
	"github.com/iwvelando/mat-calc/pkg/validation"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger      *zap.Logger
	maxBodySize int64
	version     string
	catalog     *config.Configuration
}

// NewHandler constructs the HTTP handler that serves the calculation API.
// A nil catalog serves only the built-in presets.
func NewHandler(logger *zap.Logger, maxBodySize int64, version string, catalog *config.Configuration) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxBodySize <= 0 {
		maxBodySize = constants.DefaultMaxBodySizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	if catalog == nil {
		catalog = &config.Configuration{}
	}

	h := &handler{logger: logger, maxBodySize: maxBodySize, version: trimmedVersion, catalog: catalog}

	mux := http.NewServeMux()
	mux.HandleFunc("/api/calculate", h.handleCalculate)
	mux.HandleFunc("/api/styles", h.handleStyles)
	mux.HandleFunc("/api/presets", h.handlePresets)
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type rectangleInput struct {
	Width  dimension.Value `json:"width"`
	Height dimension.Value `json:"height"`
}

func (r *rectangleInput) input() matcalc.Input {
	return matcalc.Input{Width: r.Width.Float64(), Height: r.Height.Float64()}
}

type calculateRequest struct {
	Frame  *rectangleInput `json:"frame"`
	Photo  *rectangleInput `json:"photo"`
	Style  string          `json:"style"`
	Preset string          `json:"preset"`
}

type calculateResponse struct {
	output.Document
	Duration string `json:"duration"`
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"

	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	r.Body = http.MaxBytesReader(w, r.Body, h.maxBodySize)

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondErrorWithOp(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxBodySize), op)
			return
		}
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return
	}

	frame, photo := req.Frame, req.Photo
	if req.Preset != "" {
		preset, err := h.catalog.LookupPreset(req.Preset)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusBadRequest, err.Error(), op)
			return
		}
		if frame == nil {
			frame = &rectangleInput{Width: dimension.Value(preset.Frame.Width), Height: dimension.Value(preset.Frame.Height)}
		}
		if photo == nil {
			photo = &rectangleInput{Width: dimension.Value(preset.Photo.Width), Height: dimension.Value(preset.Photo.Height)}
		}
	}
	if frame == nil {
		frame = &rectangleInput{}
	}
	if photo == nil {
		photo = &rectangleInput{}
	}

	// An empty style is echoed as-is and computed as the default.
	style := req.Style

	var warnings []string
	if style != "" && !matcalc.Style(style).Known() {
		warnings = append(warnings, validation.StyleWarning(style, matcalc.StyleNames()))
	}

	result := matcalc.Calculate(frame.input(), photo.input(), style)
	elapsed := time.Since(start)

	// JSON cannot carry infinities, and display rounding needs margins that
	// fit in an int.
	values := result.Sides()
	if result.Frame != nil {
		values = append(values, result.Frame.Width, result.Frame.Height)
	}
	for _, v := range values {
		if !displayable(v) {
			h.respondErrorWithOp(w, http.StatusBadRequest,
				fmt.Sprintf("dimensions must be finite and below %d", math.MaxInt), op)
			return
		}
	}

	h.logger.Info("calculation computed",
		zap.String("op", op),
		zap.String("style", style),
		zap.Bool("empty", result.IsEmpty()),
		zap.String("error", string(result.Error)),
		zap.Int("recommendations", len(result.Recommendations)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, calculateResponse{
		Document: output.NewDocument(result, warnings),
		Duration: elapsed.String(),
	})
}

func displayable(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v) && math.Abs(v) < math.MaxInt
}

func (h *handler) handleStyles(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]interface{}{
		"styles":  matcalc.Styles(),
		"default": constants.DefaultStyle,
	})
}

func (h *handler) handlePresets(w http.ResponseWriter, r *http.Request) {
	const op = "server.handlePresets"

	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	presets := h.catalog.AllPresets()

	switch format := r.URL.Query().Get("format"); format {
	case "", "json":
		h.writeJSON(w, http.StatusOK, map[string]interface{}{
			"presets": presets,
		})
	case "yaml":
		data, err := marshalOrderedPresetsYAML(presets)
		if err != nil {
			h.respondErrorWithOp(w, http.StatusInternalServerError, fmt.Sprintf("failed to encode presets: %v", err), op)
			return
		}
		w.Header().Set("Content-Type", "application/yaml")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write(data); err != nil {
			h.logger.Warn("failed to write presets response",
				zap.String("op", op),
				zap.Error(err),
			)
		}
	default:
		h.respondErrorWithOp(w, http.StatusBadRequest, fmt.Sprintf("unsupported format %q", format), op)
	}
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// marshalOrderedPresetsYAML encodes presets as a `presets:` mapping with
// names in sorted order, ready to paste into a config file.
func marshalOrderedPresetsYAML(presets map[string]config.Preset) ([]byte, error) {
	presetsNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, name := range config.PresetNames(presets) {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: name,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(presets[name]); err != nil {
			return nil, err
		}
		presetsNode.Content = append(presetsNode.Content, keyNode, valueNode)
	}

	root := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
		Content: []*yaml.Node{
			{Kind: yaml.ScalarNode, Tag: "!!str", Value: "presets"},
			presetsNode,
		},
	}
	return yaml.Marshal(root)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
