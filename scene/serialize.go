// SPDX-License-Identifier: EPL-2.0

package scene

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/ik5/roomscene/filter"
	"github.com/ik5/roomscene/signal"
)

// Extension is the conventional suffix for scene documents.
const Extension = ".json"

// LoadReport records what Load had to do beyond plain decoding, so callers
// and tests can see backfills instead of inferring them from object counts.
type LoadReport struct {
	// Version as found in the document, or "" when it was missing.
	Version string
	// BackfilledSource/BackfilledMic are set when the document had an empty
	// list and the default object was appended.
	BackfilledSource bool
	BackfilledMic    bool
	Warnings         []string
}

// document is the persisted layout. Optional scalar fields are pointers so a
// missing field is distinguishable from an explicit zero.
type document struct {
	Version  string      `json:"config_version"`
	RoomDim  *[3]float64 `json:"room_dim"`
	RT60     *float64    `json:"rt60"`
	Duration *float64    `json:"duration"`
	Sources  []sourceDoc `json:"sources_data"`
	Mics     []micDoc    `json:"mics_data"`
}

type sourceDoc struct {
	Name       string        `json:"name"`
	Position   [3]float64    `json:"position"`
	SignalType string        `json:"signal_type"`
	Params     signal.Params `json:"signal_params"`
}

type micDoc struct {
	Name        string     `json:"name"`
	Position    [3]float64 `json:"position"`
	Sensitivity *float64   `json:"sensitivity"`
	NoiseStd    *float64   `json:"noise_std"`
	FilterType  string     `json:"filter_type"`
	FilterOrder int        `json:"filter_order"`
	Cutoff      float64    `json:"cutoff,omitempty"`
	CutoffHigh  float64    `json:"cutoff_high,omitempty"`
}

// Save writes cfg as an indented UTF-8 JSON document. The emitted
// config_version is always CurrentVersion, and every field is written out
// explicitly, so saving is stable: Save(Load(Save(c))) produces the same
// bytes as Save(c).
func Save(w io.Writer, cfg Config) error {
	doc := document{
		Version:  CurrentVersion,
		RoomDim:  &cfg.Room.Dim,
		RT60:     &cfg.Room.RT60,
		Duration: &cfg.Duration,
		Sources:  make([]sourceDoc, 0, len(cfg.Sources)),
		Mics:     make([]micDoc, 0, len(cfg.Mics)),
	}

	for _, src := range cfg.Sources {
		doc.Sources = append(doc.Sources, sourceDoc{
			Name:       src.Name,
			Position:   src.Position,
			SignalType: src.Signal.String(),
			Params:     src.Params,
		})
	}
	for _, mic := range cfg.Mics {
		m := mic
		order := m.Filter.Order
		if order == 0 {
			order = filter.DefaultOrder
		}
		doc.Mics = append(doc.Mics, micDoc{
			Name:        m.Name,
			Position:    m.Position,
			Sensitivity: &m.Sensitivity,
			NoiseStd:    &m.NoiseStd,
			FilterType:  m.Filter.Kind.String(),
			FilterOrder: order,
			Cutoff:      m.Filter.Cutoff,
			CutoffHigh:  m.Filter.CutoffHigh,
		})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encoding scene: %w", err)
	}
	return nil
}

// Load reads a scene document. A missing or unrecognized config_version is
// never a reason to reject: the document is read as the oldest supported
// schema with a warning in the report. Missing optional fields come from the
// package defaults, and an empty source or microphone list gets exactly one
// default object appended so every loaded scene is immediately simulatable.
// The result is validated with the same invariants as construction.
func Load(r io.Reader) (Config, *LoadReport, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return Config{}, nil, fmt.Errorf("decoding scene: %w", err)
	}

	report := &LoadReport{Version: doc.Version}
	switch doc.Version {
	case CurrentVersion:
	case "":
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("missing config_version, reading as schema %s", OldestVersion))
	default:
		report.Warnings = append(report.Warnings,
			fmt.Sprintf("unknown config_version %q, reading as schema %s", doc.Version, OldestVersion))
	}

	cfg := Config{
		Version:  CurrentVersion,
		Room:     DefaultRoom(),
		Duration: DefaultDuration,
	}
	if doc.RoomDim != nil {
		cfg.Room.Dim = *doc.RoomDim
	}
	if doc.RT60 != nil {
		cfg.Room.RT60 = *doc.RT60
	}
	if doc.Duration != nil {
		cfg.Duration = *doc.Duration
	}

	for i, sd := range doc.Sources {
		typ, err := signal.ParseType(sd.SignalType)
		if err != nil {
			return Config{}, nil, fmt.Errorf("sources_data[%d]: %w", i, err)
		}
		name := sd.Name
		if name == "" {
			name = fmt.Sprintf("Source%d", i+1)
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("sources_data[%d] has no name, using %q", i, name))
		}
		cfg.Sources = append(cfg.Sources, Source{
			Name:     name,
			Position: sd.Position,
			Signal:   typ,
			Params:   sd.Params,
		})
	}

	for i, md := range doc.Mics {
		kind, err := filter.ParseKind(md.FilterType)
		if err != nil {
			return Config{}, nil, fmt.Errorf("mics_data[%d]: %w", i, err)
		}
		name := md.Name
		if name == "" {
			name = fmt.Sprintf("Mic%d", i+1)
			report.Warnings = append(report.Warnings,
				fmt.Sprintf("mics_data[%d] has no name, using %q", i, name))
		}

		mic := Mic{
			Name:        name,
			Position:    md.Position,
			Sensitivity: DefaultSensitivity,
			NoiseStd:    DefaultNoiseStd,
			Filter: filter.Spec{
				Kind:       kind,
				Order:      md.FilterOrder,
				Cutoff:     md.Cutoff,
				CutoffHigh: md.CutoffHigh,
			},
		}
		if md.Sensitivity != nil {
			mic.Sensitivity = *md.Sensitivity
		}
		if md.NoiseStd != nil {
			mic.NoiseStd = *md.NoiseStd
		}
		if mic.Filter.Order == 0 {
			mic.Filter.Order = filter.DefaultOrder
		}
		cfg.Mics = append(cfg.Mics, mic)
	}

	if len(cfg.Sources) == 0 {
		cfg.Sources = append(cfg.Sources, DefaultSource())
		report.BackfilledSource = true
		report.Warnings = append(report.Warnings, "no sources in document, appended default source")
	}
	if len(cfg.Mics) == 0 {
		cfg.Mics = append(cfg.Mics, DefaultMic())
		report.BackfilledMic = true
		report.Warnings = append(report.Warnings, "no microphones in document, appended default microphone")
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, nil, err
	}
	return cfg, report, nil
}

// SaveFile writes cfg to path.
func SaveFile(path string, cfg Config) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := Save(f, cfg); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

// LoadFile reads the scene document at path.
func LoadFile(path string) (Config, *LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return Config{}, nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	return Load(f)
}
