package artifacts

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"slices"

	"transit-delay-service/internal/domain"
	"transit-delay-service/internal/ports"
)

// Artifact file names under the artifacts directory.
const (
	modelFile          = "model.json"
	routeEncoderFile   = "le_route.json"
	weatherEncoderFile = "le_weather.json"
	metadataFile       = "metadata.json"
)

// State says which scoring path the loaded bundle supports.
type State int

const (
	// StateFallbackOnly: no usable model, the heuristic serves every request.
	StateFallbackOnly State = iota
	// StateModel: the trained ensemble scores requests.
	StateModel
)

// Metadata is the small descriptor saved next to the model.
type Metadata struct {
	ModelName   string   `json:"model_name"`
	FeatureCols []string `json:"feature_cols"`
}

// Store holds the artifacts loaded at startup. Every artifact is optional;
// the store records which are present and never reloads. Immutable after
// Load, so accessors are safe for concurrent use.
type Store struct {
	state      State
	model      *ForestRegressor
	routeEnc   *Encoder
	weatherEnc *Encoder
	meta       *Metadata
}

// Load reads whatever artifacts exist under dir. Missing files are normal
// (the service starts in fallback mode); corrupt files are logged and treated
// as absent. Load itself never fails.
func Load(dir string, logger *slog.Logger) *Store {
	s := &Store{}

	if f, ok := loadJSON[ForestRegressor](filepath.Join(dir, modelFile), logger); ok {
		if err := f.validate(); err != nil {
			logger.Error("model artifact rejected", "path", filepath.Join(dir, modelFile), "error", err)
		} else {
			s.model = f
		}
	}

	if e, ok := loadJSON[encoderFile](filepath.Join(dir, routeEncoderFile), logger); ok {
		s.routeEnc = decodeEncoder(e, filepath.Join(dir, routeEncoderFile), logger)
	}
	if e, ok := loadJSON[encoderFile](filepath.Join(dir, weatherEncoderFile), logger); ok {
		s.weatherEnc = decodeEncoder(e, filepath.Join(dir, weatherEncoderFile), logger)
	}

	if m, ok := loadJSON[Metadata](filepath.Join(dir, metadataFile), logger); ok {
		s.meta = m
	}

	// The metadata descriptor records the training column order. A mismatch
	// with the serving order would silently corrupt every prediction, so the
	// model is demoted to fallback instead.
	if s.model != nil && s.meta != nil && len(s.meta.FeatureCols) > 0 {
		if !slices.Equal(s.meta.FeatureCols, domain.FeatureColumns) {
			logger.Error("feature column order mismatch, disabling model",
				"trained", s.meta.FeatureCols, "serving", domain.FeatureColumns)
			s.model = nil
		}
	}

	// The route encoder is required for model scoring; a missing weather
	// encoder alone falls back to the built-in weather map.
	if s.model != nil && s.routeEnc != nil {
		s.state = StateModel
		logger.Info("model artifacts loaded", "model", s.modelName(), "routes", len(s.routeEnc.Classes()))
	} else {
		s.state = StateFallbackOnly
		logger.Warn("model artifacts incomplete, serving heuristic fallback",
			"model_present", s.model != nil, "route_encoder_present", s.routeEnc != nil)
	}

	return s
}

// State reports the scoring path selected at load time.
func (s *Store) State() State {
	return s.state
}

// Model returns the trained regressor, or nil in fallback mode.
func (s *Store) Model() ports.Regressor {
	if s.state != StateModel {
		return nil
	}
	return s.model
}

// RouteEncoder returns the trained route encoder, or nil when absent.
func (s *Store) RouteEncoder() ports.LabelEncoder {
	if s.routeEnc == nil {
		return nil
	}
	return s.routeEnc
}

// WeatherEncoder returns the trained weather encoder, or nil when absent.
func (s *Store) WeatherEncoder() ports.LabelEncoder {
	if s.weatherEnc == nil {
		return nil
	}
	return s.weatherEnc
}

// Metadata returns the descriptor, or nil when absent.
func (s *Store) Metadata() *Metadata {
	return s.meta
}

func (s *Store) modelName() string {
	if s.meta != nil && s.meta.ModelName != "" {
		return s.meta.ModelName
	}
	if s.model != nil && s.model.ModelName != "" {
		return s.model.ModelName
	}
	return "unknown"
}

// loadJSON reads and decodes one artifact file. ok=false covers both a
// missing file (silent) and a corrupt one (logged).
func loadJSON[T any](path string, logger *slog.Logger) (*T, bool) {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Error("artifact unreadable", "path", path, "error", err)
		}
		return nil, false
	}

	var v T
	if err := json.Unmarshal(data, &v); err != nil {
		logger.Error("artifact corrupt, treating as absent", "path", path, "error", err)
		return nil, false
	}

	return &v, true
}

func decodeEncoder(f *encoderFile, path string, logger *slog.Logger) *Encoder {
	enc, err := newEncoder(f.Classes)
	if err != nil {
		logger.Error("encoder artifact rejected", "path", path, "error", err)
		return nil
	}
	return enc
}
