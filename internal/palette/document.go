package palette

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/xeipuuv/gojsonschema"
	"golang.org/x/crypto/blake2b"

	"swatchbook/internal/swatch"
)

// ErrMalformedDocument is returned when a document is not valid JSON or does
// not have the palette shape.
var ErrMalformedDocument = errors.New("malformed document")

// Document is the JSON form of a palette:
//
//	{"name": "...", "swatches": [record or null, ... x MaxLength]}
type Document struct {
	Name     string           `json:"name"`
	Swatches []*swatch.Record `json:"swatches"`
}

// UnmarshalJSON decodes a document, defaulting a missing or null name.
func (d *Document) UnmarshalJSON(data []byte) error {
	type plain Document
	doc := plain{Name: DefaultName}
	if err := json.Unmarshal(data, &doc); err != nil {
		return err
	}
	*d = Document(doc)
	return nil
}

// ToDocument returns the document form of p.
func (p *Palette) ToDocument() Document {
	doc := Document{
		Name:     p.name,
		Swatches: make([]*swatch.Record, MaxLength),
	}
	for i, c := range p.cells {
		if c != nil {
			rec := c.Record()
			doc.Swatches[i] = &rec
		}
	}
	return doc
}

// FromDocument builds a palette from its document form.
func FromDocument(doc Document) (*Palette, error) {
	if len(doc.Swatches) != MaxLength {
		return nil, fmt.Errorf("%w: swatches has %d entries, want %d",
			ErrMalformedDocument, len(doc.Swatches), MaxLength)
	}
	p := New(doc.Name)
	for i, rec := range doc.Swatches {
		if rec == nil {
			continue
		}
		s := swatch.FromRecord(*rec)
		p.cells[i] = &s
	}
	return p, nil
}

// ParseDocument validates raw JSON against the document schema and decodes it.
func ParseDocument(data []byte) (*Palette, error) {
	if err := validateDocument(data); err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return FromDocument(doc)
}

// MarshalJSON encodes the palette as its document.
func (p *Palette) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.ToDocument())
}

// String returns the document JSON.
func (p *Palette) String() string {
	data, err := p.MarshalJSON()
	if err != nil {
		return fmt.Sprintf("<palette %q: %v>", p.name, err)
	}
	return string(data)
}

// Fingerprint is a short BLAKE2b digest of the document, stable across
// save and load.
func (p *Palette) Fingerprint() string {
	data, err := p.MarshalJSON()
	if err != nil {
		return ""
	}
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:6])
}

var documentSchema = fmt.Sprintf(`{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["swatches"],
  "properties": {
    "name": {"type": ["string", "null"]},
    "swatches": {
      "type": "array",
      "minItems": %[1]d,
      "maxItems": %[1]d,
      "items": {
        "type": ["object", "null"],
        "properties": {
          "hue": {"type": "number"},
          "saturation": {"type": "number"},
          "brightness": {"type": "number"},
          "alpha": {"type": "number"},
          "colorSpace": {"type": "integer"}
        }
      }
    }
  }
}`, MaxLength)

var (
	schemaOnce sync.Once
	schema     *gojsonschema.Schema
	schemaErr  error
)

func compiledSchema() (*gojsonschema.Schema, error) {
	schemaOnce.Do(func() {
		schema, schemaErr = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	})
	return schema, schemaErr
}

func validateDocument(data []byte) error {
	s, err := compiledSchema()
	if err != nil {
		return fmt.Errorf("compile document schema: %w", err)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, e := range result.Errors() {
		msgs = append(msgs, e.Field()+": "+e.Description())
	}
	return fmt.Errorf("%w: %s", ErrMalformedDocument, strings.Join(msgs, "; "))
}
