package palette

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swatchbook/internal/swatch"
)

func mustHex(t *testing.T, s string) *swatch.Swatch {
	t.Helper()
	sw, err := swatch.FromHex(s)
	require.NoError(t, err)
	return &sw
}

func TestNewPalette(t *testing.T) {
	p := New()
	assert.Equal(t, "Untitled Palette", p.Name())
	assert.Equal(t, MaxLength, p.Len())
	assert.Zero(t, p.Count())
	for i := 0; i < MaxLength; i++ {
		s, err := p.Get(i)
		require.NoError(t, err)
		assert.Nil(t, s)
	}

	assert.Equal(t, "Brand", New("Brand").Name())
}

func TestBounds(t *testing.T) {
	p := New()
	for _, i := range []int{-1, MaxLength, 100} {
		_, err := p.Get(i)
		assert.ErrorIs(t, err, ErrIndexOutOfRange)
		assert.ErrorIs(t, p.Set(i, mustHex(t, "#fff")), ErrIndexOutOfRange)
	}
	for _, i := range []int{0, MaxLength - 1} {
		require.NoError(t, p.Set(i, mustHex(t, "#fff")))
		s, err := p.Get(i)
		require.NoError(t, err)
		assert.NotNil(t, s)
	}
}

func TestSetCopiesAndClears(t *testing.T) {
	p := New()
	s := mustHex(t, "#ff0000")
	require.NoError(t, p.Set(3, s))

	s.SetHSV(0.5, 0.5, 0.5)
	got, err := p.Get(3)
	require.NoError(t, err)
	h, _, _ := got.HSV()
	assert.Zero(t, h)

	got.SetHSV(0.9, 0.9, 0.9)
	again, _ := p.Get(3)
	h, _, _ = again.HSV()
	assert.Zero(t, h)

	require.NoError(t, p.Set(3, nil))
	cleared, err := p.Get(3)
	require.NoError(t, err)
	assert.Nil(t, cleared)
}

func TestPosition(t *testing.T) {
	row, col, err := Position(0)
	require.NoError(t, err)
	assert.Equal(t, [2]int{0, 0}, [2]int{row, col})

	row, col, err = Position(29)
	require.NoError(t, err)
	assert.Equal(t, [2]int{2, 9}, [2]int{row, col})

	_, _, err = Position(30)
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
}

func TestFromText(t *testing.T) {
	p, err := FromText("#FF0000 #00FF00\n#0000FF")
	require.NoError(t, err)
	assert.Equal(t, 3, p.Count())

	want := map[int]float64{0: 0, 1: 1.0 / 3, 10: 2.0 / 3}
	for i := 0; i < MaxLength; i++ {
		s, err := p.Get(i)
		require.NoError(t, err)
		hue, ok := want[i]
		if !ok {
			assert.Nil(t, s, "slot %d", i)
			continue
		}
		require.NotNil(t, s, "slot %d", i)
		h, sat, b := s.HSV()
		assert.InDelta(t, hue, h, 1e-9)
		assert.InDelta(t, 1, sat, 1e-9)
		assert.InDelta(t, 1, b, 1e-9)
	}
}

func TestFromTextBounds(t *testing.T) {
	line := strings.TrimSpace(strings.Repeat("#123456 ", 12))
	p, err := FromText(strings.Repeat(line+"\n", 5))
	require.NoError(t, err)
	assert.Equal(t, MaxLength, p.Count())
}

func TestFromTextRejectsInvalidToken(t *testing.T) {
	p, err := FromText("#FF0000 #12")
	assert.ErrorIs(t, err, swatch.ErrInvalidColorFormat)
	assert.Nil(t, p)
	assert.Contains(t, err.Error(), "line 1, token 2")
}

func TestFromTextEmpty(t *testing.T) {
	p, err := FromText("no colors here")
	require.NoError(t, err)
	assert.Zero(t, p.Count())
}

func TestFilename(t *testing.T) {
	tests := []struct {
		name, ext, want string
	}{
		{"Untitled Palette", ".swatches", "Untitled Palette.swatches"},
		{"Brand", "swatches", "Brand.swatches"},
		{"../../etc/passwd", ".swatches", ".._.._etc_passwd.swatches"},
		{"  ", ".swatches", "Untitled Palette.swatches"},
		{"..", ".swatches", "Untitled Palette.swatches"},
		{"a\tb", "", "a_b"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.name).Filename(tt.ext))
		})
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	p := New("Round Trip")
	require.NoError(t, p.Set(0, mustHex(t, "#ff8800")))
	odd := swatch.FromRecord(swatch.Record{Hue: 0.25, Saturation: 0.5, Brightness: 0.75, Alpha: 0.5, ColorSpace: 3})
	require.NoError(t, p.Set(17, &odd))

	back, err := FromDocument(p.ToDocument())
	require.NoError(t, err)
	assertSamePalette(t, p, back)

	data, err := json.Marshal(p)
	require.NoError(t, err)
	parsed, err := ParseDocument(data)
	require.NoError(t, err)
	assertSamePalette(t, p, parsed)
	assert.Equal(t, p.Fingerprint(), parsed.Fingerprint())
}

func TestDocumentShape(t *testing.T) {
	p := New()
	require.NoError(t, p.Set(1, mustHex(t, "#000")))

	var raw map[string]any
	require.NoError(t, json.Unmarshal([]byte(p.String()), &raw))
	assert.Equal(t, "Untitled Palette", raw["name"])
	swatches, ok := raw["swatches"].([]any)
	require.True(t, ok)
	assert.Len(t, swatches, MaxLength)
	assert.Nil(t, swatches[0])
	assert.Equal(t, map[string]any{
		"hue": 0.0, "saturation": 0.0, "brightness": 0.0, "alpha": 1.0, "colorSpace": 0.0,
	}, swatches[1])
}

func TestParseDocumentLenient(t *testing.T) {
	items := make([]string, MaxLength)
	for i := range items {
		items[i] = "null"
	}
	items[4] = `{"hue": 0.5}`
	data := `{"swatches": [` + strings.Join(items, ",") + `]}`

	p, err := ParseDocument([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultName, p.Name())
	s, err := p.Get(4)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, swatch.Record{Hue: 0.5, Alpha: 1}, s.Record())
}

func TestParseDocumentNullName(t *testing.T) {
	data := `{"name": null, "swatches": [` + strings.TrimSuffix(strings.Repeat("null,", MaxLength), ",") + `]}`

	p, err := ParseDocument([]byte(data))
	require.NoError(t, err)
	assert.Equal(t, DefaultName, p.Name())
	assert.Equal(t, 0, p.Count())
}

func TestParseDocumentFloatColorSpace(t *testing.T) {
	items := make([]string, MaxLength)
	for i := range items {
		items[i] = "null"
	}
	items[0] = `{"hue": 0, "saturation": 1, "brightness": 1, "alpha": 1.0, "colorSpace": 0.0}`
	items[1] = `{"colorSpace": 2.0}`
	data := `{"name": "Floats", "swatches": [` + strings.Join(items, ",") + `]}`

	p, err := ParseDocument([]byte(data))
	require.NoError(t, err)

	s, err := p.Get(0)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 0, s.ColorSpace())
	assert.Equal(t, "#ff0000", s.Hex())

	s, err = p.Get(1)
	require.NoError(t, err)
	require.NotNil(t, s)
	assert.Equal(t, 2, s.ColorSpace())
}

func TestParseDocumentMalformed(t *testing.T) {
	nulls := func(n int) string {
		items := make([]string, n)
		for i := range items {
			items[i] = "null"
		}
		return "[" + strings.Join(items, ",") + "]"
	}

	tests := map[string]string{
		"not json":          `{"name":`,
		"not an object":     `[]`,
		"missing swatches":  `{"name": "x"}`,
		"swatches not list": `{"swatches": {}}`,
		"29 swatches":       `{"swatches": ` + nulls(29) + `}`,
		"31 swatches":       `{"swatches": ` + nulls(31) + `}`,
		"name not string":   `{"name": 3, "swatches": ` + nulls(30) + `}`,
		"swatch not object": `{"swatches": [1` + strings.Repeat(",null", 29) + `]}`,
		"hue not number":    `{"swatches": [{"hue": "red"}` + strings.Repeat(",null", 29) + `]}`,
		"fractional space":  `{"swatches": [{"colorSpace": 1.5}` + strings.Repeat(",null", 29) + `]}`,
	}
	for name, data := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := ParseDocument([]byte(data))
			assert.ErrorIs(t, err, ErrMalformedDocument)
		})
	}
}

func TestFromDocumentWrongLength(t *testing.T) {
	_, err := FromDocument(Document{Name: "x", Swatches: make([]*swatch.Record, 29)})
	assert.ErrorIs(t, err, ErrMalformedDocument)

	_, err = FromDocument(Document{Name: "x"})
	assert.ErrorIs(t, err, ErrMalformedDocument)
}

func TestFingerprintChangesWithContent(t *testing.T) {
	a := New()
	b := New()
	assert.Equal(t, a.Fingerprint(), b.Fingerprint())
	assert.Len(t, a.Fingerprint(), 12)

	require.NoError(t, b.Set(0, mustHex(t, "#fff")))
	assert.NotEqual(t, a.Fingerprint(), b.Fingerprint())
}

func assertSamePalette(t *testing.T, want, got *Palette) {
	t.Helper()
	assert.Equal(t, want.Name(), got.Name())
	for i := 0; i < MaxLength; i++ {
		w, err := want.Get(i)
		require.NoError(t, err)
		g, err := got.Get(i)
		require.NoError(t, err)
		if w == nil {
			assert.Nil(t, g, "slot %d", i)
			continue
		}
		require.NotNil(t, g, "slot %d", i)
		assert.Equal(t, w.Record(), g.Record(), "slot %d", i)
	}
}
