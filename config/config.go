// Package config reads codec configuration from JSONC files.
//
// Comments and trailing commas are accepted. Fields that are absent keep the values of
// codec.DefaultConfig:
//
//	{
//	    // nucleotides, N included
//	    "sequence_encoding": "bitwise",
//	    "quality_encoding": "compressed",
//	    "alphabet_size": 5,
//	    "max_quality": 63,
//	    "extended_quality": false,
//	    "byte_order": "little",
//	}
package config

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/arloliu/seqpack/codec"
	"github.com/arloliu/seqpack/endian"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
	"github.com/arloliu/seqpack/fs"
	"github.com/tailscale/hujson"
)

// File is the serialized form of a codec configuration.
// Nil fields were absent from the document.
type File struct {
	SequenceEncoding *string `json:"sequence_encoding,omitempty"`
	QualityEncoding  *string `json:"quality_encoding,omitempty"`
	AlphabetSize     *int    `json:"alphabet_size,omitempty"`
	MaxQuality       *int    `json:"max_quality,omitempty"`
	ExtendedQuality  *bool   `json:"extended_quality,omitempty"`
	ByteOrder        *string `json:"byte_order,omitempty"`
}

// Parse decodes a JSONC document into a validated codec.Config.
func Parse(data []byte) (codec.Config, error) {
	standardized, err := hujson.Standardize(data)
	if err != nil {
		return codec.Config{}, fmt.Errorf("%w: invalid JSONC: %w", errs.ErrInvalidConfig, err)
	}

	var file File

	dec := json.NewDecoder(bytes.NewReader(standardized))
	dec.DisallowUnknownFields()

	if err := dec.Decode(&file); err != nil {
		return codec.Config{}, fmt.Errorf("%w: invalid JSON: %w", errs.ErrInvalidConfig, err)
	}

	return file.Resolve()
}

// Load reads and parses the configuration file at path.
func Load(fsys fs.FS, path string) (codec.Config, error) {
	f, err := fsys.Open(path)
	if err != nil {
		return codec.Config{}, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return codec.Config{}, fmt.Errorf("read config %s: %w", path, err)
	}

	cfg, err := Parse(data)
	if err != nil {
		return codec.Config{}, fmt.Errorf("config %s: %w", path, err)
	}

	return cfg, nil
}

// Resolve applies the present fields over codec.DefaultConfig and validates the result.
func (f File) Resolve() (codec.Config, error) {
	cfg := codec.DefaultConfig()

	if f.SequenceEncoding != nil {
		enc, err := format.ParseEncodingType(*f.SequenceEncoding)
		if err != nil {
			return codec.Config{}, fmt.Errorf("sequence_encoding: %w", err)
		}
		cfg.SequenceEncoding = enc
	}

	if f.QualityEncoding != nil {
		enc, err := format.ParseEncodingType(*f.QualityEncoding)
		if err != nil {
			return codec.Config{}, fmt.Errorf("quality_encoding: %w", err)
		}
		cfg.QualityEncoding = enc
	}

	if f.AlphabetSize != nil {
		cfg.AlphabetSize = *f.AlphabetSize
	}

	if f.MaxQuality != nil {
		cfg.MaxQuality = *f.MaxQuality
	}

	if f.ExtendedQuality != nil {
		cfg.ExtendedQuality = *f.ExtendedQuality
	}

	if f.ByteOrder != nil {
		engine, err := endian.ParseEngine(*f.ByteOrder)
		if err != nil {
			return codec.Config{}, fmt.Errorf("byte_order: %w", err)
		}
		cfg.ByteOrder = engine
	}

	if err := cfg.Validate(); err != nil {
		return codec.Config{}, err
	}

	return cfg, nil
}

// FromConfig returns the serialized form of cfg.
func FromConfig(cfg codec.Config) File {
	seq := encodingName(cfg.SequenceEncoding)
	qual := encodingName(cfg.QualityEncoding)
	order := "little"
	if cfg.ByteOrder != nil {
		order = endian.Name(cfg.ByteOrder)
	}

	return File{
		SequenceEncoding: &seq,
		QualityEncoding:  &qual,
		AlphabetSize:     &cfg.AlphabetSize,
		MaxQuality:       &cfg.MaxQuality,
		ExtendedQuality:  &cfg.ExtendedQuality,
		ByteOrder:        &order,
	}
}

// Save writes cfg as an indented JSON document to path, replacing the file atomically.
func Save(fsys fs.FS, path string, cfg codec.Config) error {
	data, err := json.MarshalIndent(FromConfig(cfg), "", "    ")
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}
	data = append(data, '\n')

	if err := fsys.WriteFileAtomic(path, bytes.NewReader(data)); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}

	return nil
}

func encodingName(e format.EncodingType) string {
	switch e {
	case format.EncodingBitwise:
		return "bitwise"
	case format.EncodingCompressed:
		return "compressed"
	default:
		return "raw"
	}
}
