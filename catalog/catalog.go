// Package catalog maps named columns to value schemas and checks flat records
// of text values against them.
//
// A catalog is usually loaded from a document:
//
//	strict: true
//	columns:
//	  - name: price
//	    schema: decimal(min=0,max=100,precision=5,scale=2)
//	    required: true
//	  - name: color
//	    schema: domainString(domain=blue|green|red)
package catalog

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	vs "github.com/reoring/valueschema"
	"github.com/reoring/valueschema/dsl"
	js "github.com/reoring/valueschema/jsonschema"
)

// Column declares one named column.
type Column struct {
	Name     string `json:"name" yaml:"name"`
	Schema   string `json:"schema" yaml:"schema"`
	Required bool   `json:"required,omitempty" yaml:"required,omitempty"`
}

// Document is the serialized form of a Catalog.
type Document struct {
	// Strict rejects record keys that are not declared columns.
	Strict  bool     `json:"strict,omitempty" yaml:"strict,omitempty"`
	Columns []Column `json:"columns" yaml:"columns"`
}

type column struct {
	Column
	schema dsl.AnyAdapter
}

// Catalog is immutable once built and safe for concurrent use.
type Catalog struct {
	strict  bool
	columns []column
	index   map[string]int
}

// New builds a catalog, resolving every column's short string.
func New(doc Document) (*Catalog, error) {
	c := &Catalog{strict: doc.Strict, index: make(map[string]int, len(doc.Columns))}
	for i, col := range doc.Columns {
		if col.Name == "" {
			return nil, errors.Newf("catalog: column %d has no name", i)
		}
		if _, dup := c.index[col.Name]; dup {
			return nil, errors.Newf("catalog: duplicate column %q", col.Name)
		}
		ad, err := ParseSchema(col.Schema)
		if err != nil {
			return nil, errors.Wrapf(err, "catalog: column %q", col.Name)
		}
		c.index[col.Name] = len(c.columns)
		c.columns = append(c.columns, column{Column: col, schema: ad})
	}
	return c, nil
}

// LoadYAML decodes a YAML document. Unknown fields are rejected.
func LoadYAML(data []byte) (*Catalog, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog: empty document")
		}
		return nil, errors.Wrap(err, "catalog: decode yaml")
	}
	return New(doc)
}

// LoadJSON decodes a JSON document. Unknown fields are rejected.
func LoadJSON(data []byte) (*Catalog, error) {
	var doc Document
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("catalog: empty document")
		}
		return nil, errors.Wrap(err, "catalog: decode json")
	}
	return New(doc)
}

// LoadFile reads path and picks the decoder by extension (.json, otherwise YAML).
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "catalog: read %s", path)
	}
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return LoadJSON(data)
	}
	return LoadYAML(data)
}

// Columns returns the column names in declaration order.
func (c *Catalog) Columns() []string {
	out := make([]string, len(c.columns))
	for i, col := range c.columns {
		out[i] = col.Name
	}
	return out
}

// Schema returns the schema of the named column.
func (c *Catalog) Schema(name string) (dsl.AnyAdapter, bool) {
	i, ok := c.index[name]
	if !ok {
		return dsl.AnyAdapter{}, false
	}
	return c.columns[i].schema, true
}

// Document renders the catalog back with canonical short strings.
func (c *Catalog) Document() Document {
	doc := Document{Strict: c.strict, Columns: make([]Column, len(c.columns))}
	for i, col := range c.columns {
		doc.Columns[i] = Column{Name: col.Name, Schema: col.schema.ShortString(), Required: col.Required}
	}
	return doc
}

// Check decodes every present column of rec. All problems are collected and
// returned as vs.Issues with "/<column>" paths; the decoded values of the
// columns that passed are returned either way.
func (c *Catalog) Check(rec map[string]string) (map[string]any, error) {
	out := make(map[string]any, len(rec))
	var iss vs.Issues
	for _, col := range c.columns {
		path := pointer(col.Name)
		text, present := rec[col.Name]
		if !present {
			if col.Required {
				iss = vs.AppendIssues(iss, vs.Rebase(vs.Issues{vs.NewIssue(vs.CodeRequired, map[string]string{"field": col.Name})}, path)...)
			}
			continue
		}
		v, err := col.schema.Check(text)
		if err == nil {
			out[col.Name] = v
			continue
		}
		colIss, ok := vs.AsIssues(err)
		if !ok {
			return nil, errors.Wrapf(err, "catalog: column %q", col.Name)
		}
		iss = vs.AppendIssues(iss, vs.Rebase(colIss, path)...)
	}
	if c.strict {
		var unknown []string
		for k := range rec {
			if _, ok := c.index[k]; !ok {
				unknown = append(unknown, k)
			}
		}
		sort.Strings(unknown)
		for _, k := range unknown {
			iss = vs.AppendIssues(iss, vs.Rebase(vs.Issues{vs.NewIssue(vs.CodeUnknownKey, map[string]string{"field": k})}, pointer(k))...)
		}
	}
	if len(iss) > 0 {
		return out, iss
	}
	return out, nil
}

// JSONSchema projects the catalog as an object schema over its columns.
func (c *Catalog) JSONSchema() (*js.Schema, error) {
	obj := &js.Schema{Type: "object", Properties: make(map[string]*js.Schema, len(c.columns))}
	for _, col := range c.columns {
		s, err := col.schema.JSONSchema()
		if err != nil {
			return nil, errors.Wrapf(err, "catalog: column %q", col.Name)
		}
		obj.Properties[col.Name] = s
		if col.Required {
			obj.Required = append(obj.Required, col.Name)
		}
	}
	if c.strict {
		obj.AdditionalProperties = false
	}
	return obj, nil
}

// RecordFromJSON flattens a JSON object of scalars into a text record.
// Numbers keep their literal text and null counts as absent.
func RecordFromJSON(data []byte) (map[string]string, error) {
	var raw map[string]any
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "catalog: decode record")
	}
	rec := make(map[string]string, len(raw))
	for k, v := range raw {
		switch t := v.(type) {
		case nil:
		case string:
			rec[k] = t
		case json.Number:
			rec[k] = t.String()
		case bool:
			rec[k] = strconv.FormatBool(t)
		default:
			return nil, errors.Newf("catalog: field %q is not a scalar", k)
		}
	}
	return rec, nil
}

// pointer escapes name as a single-token JSON Pointer (RFC 6901).
func pointer(name string) string {
	return "/" + strings.ReplaceAll(strings.ReplaceAll(name, "~", "~0"), "/", "~1")
}
