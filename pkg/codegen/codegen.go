// Package codegen renders portable C99 sources for a CRC variant: a header,
// a table-driven implementation and a Unity test asserting the check value.
package codegen

import (
	"bytes"
	"fmt"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/GardenTools/CrcEngine/internel/utils"
	"github.com/GardenTools/CrcEngine/pkg/crc"
)

type Options struct {
	// Ident overrides the C identifier derived from the variant name.
	Ident string
}

type File struct {
	Name    string
	Content []byte
}

type Files []File

// Ident derives a C identifier from a variant name: lower case, with every
// run of other characters replaced by a single underscore.
func Ident(name string) string {
	var b strings.Builder
	underscore := false
	for _, r := range strings.ToLower(name) {
		if ('a' <= r && r <= 'z') || ('0' <= r && r <= '9') {
			b.WriteRune(r)
			underscore = false
			continue
		}
		if !underscore && b.Len() > 0 {
			b.WriteByte('_')
			underscore = true
		}
	}
	ident := strings.TrimSuffix(b.String(), "_")
	if ident != "" && ident[0] >= '0' && ident[0] <= '9' {
		ident = "crc_" + ident
	}
	return ident
}

// cType is the smallest stdint type holding the register.
func cType(width uint) (name string, bits uint) {
	switch {
	case width <= 8:
		return "uint8_t", 8
	case width <= 16:
		return "uint16_t", 16
	case width <= 32:
		return "uint32_t", 32
	}
	return "uint64_t", 64
}

func literal(v uint64, bits uint) string {
	suffix := "u"
	switch bits {
	case 32:
		suffix = "ul"
	case 64:
		suffix = "ull"
	}
	return fmt.Sprintf("0x%0*X%s", int(bits/4), v, suffix)
}

type model struct {
	Params    crc.Params
	Ident     string
	Guard     string
	Type      string
	TypeBits  uint
	Reflected bool
	Seed      string
	Mask      string
	RegMask   string
	TopShift  uint
	OutShift  uint
	XorOut    string
	// Reverse is set when the register has to be reflected before XorOut.
	Reverse bool
	Check   string
	Table   []string
}

func newModel(p crc.Params, ident string) model {
	typ, bits := cType(p.Width)
	m := model{
		Params:    p,
		Ident:     ident,
		Guard:     strings.ToUpper(ident) + "_H",
		Type:      typ,
		TypeBits:  bits,
		Reflected: p.RefIn,
		Mask:      literal(p.Mask(), bits),
		XorOut:    literal(p.XorOut, bits),
		Check:     literal(crc.Compute(p, []byte(crc.CheckString)), bits),
	}

	regWidth := max(p.Width, 8)
	regMask := ^uint64(0) >> (64 - regWidth)
	m.RegMask = literal(regMask, bits)
	if p.RefIn {
		m.Seed = literal(crc.Reflect(p.Init, p.Width), bits)
		m.Reverse = !p.RefOut
	} else {
		m.OutShift = regWidth - p.Width
		m.TopShift = regWidth - 8
		m.Seed = literal((p.Init<<m.OutShift)&regMask, bits)
		m.Reverse = p.RefOut
	}

	t := crc.MakeTable(p)
	m.Table = make([]string, 256)
	for i := range m.Table {
		m.Table[i] = literal(t.Entry(byte(i)), bits)
	}
	return m
}

var templates = template.Must(template.New("").Funcs(template.FuncMap{
	"rows": rows,
	"join": strings.Join,
}).Parse(headerTemplate + sourceTemplate + testTemplate))

// rows groups table literals for printing, n per line.
func rows(values []string, n int) [][]string {
	var out [][]string
	for len(values) > n {
		out = append(out, values[:n])
		values = values[n:]
	}
	return append(out, values)
}

// Generate renders the header, implementation and Unity test for p.
func Generate(p crc.Params, opts Options) (Files, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	ident := opts.Ident
	if ident == "" {
		ident = Ident(p.Name)
	}
	if ident == "" || ident != Ident(ident) {
		return nil, fmt.Errorf("%w: %q is not a usable C identifier", crc.ErrInvalidParams, ident)
	}

	m := newModel(p, ident)
	var files Files
	for _, f := range []struct{ name, tmpl string }{
		{ident + ".h", "header"},
		{ident + ".c", "source"},
		{"test_" + ident + ".c", "test"},
	} {
		var buf bytes.Buffer
		if err := templates.ExecuteTemplate(&buf, f.tmpl, m); err != nil {
			return nil, fmt.Errorf("failed to render %s: %v", f.name, err)
		}
		files = append(files, File{Name: f.name, Content: buf.Bytes()})
	}
	return files, nil
}

// WriteFiles writes files into dir, creating it if needed.
func WriteFiles(dir string, files Files) error {
	for _, f := range files {
		if err := utils.WriteFile(filepath.Join(dir, f.Name), f.Content); err != nil {
			return err
		}
	}
	return nil
}
