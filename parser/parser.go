package parser

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"go.yaml.in/yaml/v4"

	"github.com/erraggy/oasdocs/oaserrors"
)

// Parser reads OpenAPI and Swagger documents into a Document.
type Parser struct {
	// Format forces a decoder. SourceFormatUnknown (the default) picks one
	// from the file extension, or from the content for in-memory input.
	Format SourceFormat
	// Logger is the structured logger for debug output
	// If nil, logging is disabled (default)
	Logger Logger
}

// New creates a new Parser instance with default settings
func New() *Parser {
	return &Parser{Format: SourceFormatUnknown}
}

// log returns the configured logger, or a no-op logger if none is set.
func (p *Parser) log() Logger {
	if p.Logger != nil {
		return p.Logger
	}
	return NopLogger{}
}

// ParseResult contains the parsed document and metadata about its source.
//
// Callers should treat ParseResult as read-only after parsing.
type ParseResult struct {
	// SourcePath is the path the document was read from.
	// For in-memory input it is "ParseBytes.<format>" or "ParseReader.<format>".
	SourcePath string
	// SourceFormat is the decoder that was used (JSON or YAML)
	SourceFormat SourceFormat
	// Version is the declared "openapi" or "swagger" version, if any
	Version string
	// Document is the decoded document
	Document *Document
	// LoadTime is the time taken to read the source data
	LoadTime time.Duration
	// SourceSize is the size of the source data in bytes
	SourceSize int64
	// Stats contains statistical information about the document
	Stats DocumentStats

	// sourceNode holds the decoded node tree for MarshalOrderedJSON
	sourceNode *yaml.Node
}

// IsOAS2 returns true if the document declares Swagger 2.0.
func (pr *ParseResult) IsOAS2() bool {
	return pr != nil && pr.Document.IsOAS2()
}

// MarshalOrderedJSON returns the whole source document as compact JSON with
// keys in source order. YAML input is converted; JSON input is re-encoded.
func (pr *ParseResult) MarshalOrderedJSON() ([]byte, error) {
	if pr == nil || pr.sourceNode == nil {
		return nil, fmt.Errorf("parser: no source document available")
	}
	var buf bytes.Buffer
	if err := marshalNodeAsJSON(&buf, pr.sourceNode, 0); err != nil {
		return nil, fmt.Errorf("parser: failed to marshal document: %w", err)
	}
	return buf.Bytes(), nil
}

// Parse reads and decodes the file at specPath.
// Files ending in ".yaml" or ".yml" are decoded as YAML, anything else as JSON.
func (p *Parser) Parse(specPath string) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := os.ReadFile(specPath) //nolint:gosec // G304 - reading the user's spec is the point
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, inputError(specPath, err)
	}

	format := p.Format
	if format == SourceFormatUnknown || format == "" {
		format = detectFormatFromPath(specPath)
	}

	res, err := p.parseData(data, format, specPath)
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseReader decodes a document read from r.
// Note: SourcePath is set to ParseReader.yaml or ParseReader.json.
func (p *Parser) ParseReader(r io.Reader) (*ParseResult, error) {
	loadStart := time.Now()
	data, err := io.ReadAll(r)
	loadTime := time.Since(loadStart)
	if err != nil {
		return nil, &oaserrors.InputError{Path: "ParseReader", Cause: err}
	}
	res, err := p.parseInMemory(data, "ParseReader")
	if err != nil {
		return nil, err
	}
	res.LoadTime = loadTime
	return res, nil
}

// ParseBytes decodes a document held in memory.
// Note: SourcePath is set to ParseBytes.yaml or ParseBytes.json.
func (p *Parser) ParseBytes(data []byte) (*ParseResult, error) {
	return p.parseInMemory(data, "ParseBytes")
}

func (p *Parser) parseInMemory(data []byte, name string) (*ParseResult, error) {
	format := p.Format
	if format == SourceFormatUnknown || format == "" {
		format = detectFormatFromContent(data)
	}
	return p.parseData(data, format, name+"."+string(format))
}

func (p *Parser) parseData(data []byte, format SourceFormat, sourcePath string) (*ParseResult, error) {
	log := p.log().With("source", sourcePath, "format", string(format))
	log.Debug("decoding document", "size", FormatBytes(int64(len(data))))

	var (
		root *yaml.Node
		err  error
	)
	if format == SourceFormatJSON {
		root, err = decodeJSON(data, sourcePath)
	} else {
		root, err = decodeYAML(data, sourcePath)
	}
	if err != nil {
		return nil, err
	}

	doc, err := decodeDocument(root)
	if err != nil {
		return nil, &oaserrors.DecodeError{
			Path:    sourcePath,
			Format:  string(format),
			Line:    rootLine(root),
			Message: err.Error(),
		}
	}

	res := &ParseResult{
		SourcePath:   sourcePath,
		SourceFormat: format,
		Version:      doc.Version(),
		Document:     doc,
		SourceSize:   int64(len(data)),
		Stats:        GetDocumentStats(doc),
		sourceNode:   root,
	}
	log.Debug("decoded document",
		"version", res.Version,
		"paths", res.Stats.PathCount,
		"operations", res.Stats.OperationCount,
		"schemas", res.Stats.SchemaCount,
	)
	return res, nil
}

// decodeJSON rejects anything that is not strict JSON, then builds a
// yaml.Node tree from the token stream so key order survives. Strings follow
// JSON escape rules and numbers keep their literal text.
func decodeJSON(data []byte, sourcePath string) (*yaml.Node, error) {
	// RawMessage checks syntax only, with absolute error offsets.
	var raw json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		de := &oaserrors.DecodeError{
			Path:    sourcePath,
			Format:  string(SourceFormatJSON),
			Message: "invalid JSON",
			Cause:   err,
		}
		var syntaxErr *json.SyntaxError
		if errors.As(err, &syntaxErr) {
			de.Line, de.Column = lineColumn(data, syntaxErr.Offset)
		}
		return nil, de
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	tree := &jsonTree{dec: dec, data: data, line: 1}
	tok, line, err := tree.next()
	if err == nil {
		var root *yaml.Node
		if root, err = tree.value(tok, line); err == nil {
			return root, nil
		}
	}
	return nil, &oaserrors.DecodeError{
		Path:    sourcePath,
		Format:  string(SourceFormatJSON),
		Line:    tree.line,
		Message: "invalid JSON",
		Cause:   err,
	}
}

// jsonTree turns a json.Decoder token stream into yaml.Node values, tracking
// the line of each token.
type jsonTree struct {
	dec  *json.Decoder
	data []byte
	off  int64
	line int
}

func (t *jsonTree) next() (json.Token, int, error) {
	tok, err := t.dec.Token()
	if err != nil {
		return nil, t.line, err
	}
	// Tokens never span lines, so the offset after one gives its line.
	end := t.dec.InputOffset()
	t.line += bytes.Count(t.data[t.off:end], []byte{'\n'})
	t.off = end
	return tok, t.line, nil
}

func (t *jsonTree) value(tok json.Token, line int) (*yaml.Node, error) {
	switch v := tok.(type) {
	case json.Delim:
		switch v {
		case '{':
			n := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map", Line: line}
			for t.dec.More() {
				keyTok, keyLine, err := t.next()
				if err != nil {
					return nil, err
				}
				key, ok := keyTok.(string)
				if !ok {
					return nil, fmt.Errorf("line %d: object key is not a string", keyLine)
				}
				valTok, valLine, err := t.next()
				if err != nil {
					return nil, err
				}
				val, err := t.value(valTok, valLine)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, jsonScalar("!!str", key, keyLine), val)
			}
			_, _, err := t.next()
			return n, err
		case '[':
			n := &yaml.Node{Kind: yaml.SequenceNode, Tag: "!!seq", Line: line}
			for t.dec.More() {
				itemTok, itemLine, err := t.next()
				if err != nil {
					return nil, err
				}
				item, err := t.value(itemTok, itemLine)
				if err != nil {
					return nil, err
				}
				n.Content = append(n.Content, item)
			}
			_, _, err := t.next()
			return n, err
		}
		return nil, fmt.Errorf("line %d: unexpected %q", line, rune(v))
	case string:
		return jsonScalar("!!str", v, line), nil
	case json.Number:
		tag := "!!int"
		if strings.ContainsAny(v.String(), ".eE") {
			tag = "!!float"
		}
		return jsonScalar(tag, v.String(), line), nil
	case bool:
		return jsonScalar("!!bool", strconv.FormatBool(v), line), nil
	case nil:
		return jsonScalar("!!null", "null", line), nil
	default:
		return nil, fmt.Errorf("line %d: unexpected token %T", line, tok)
	}
}

func jsonScalar(tag, value string, line int) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value, Line: line}
}

func decodeYAML(data []byte, sourcePath string) (*yaml.Node, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, &oaserrors.DecodeError{
			Path:    sourcePath,
			Format:  string(SourceFormatYAML),
			Line:    yamlErrorLine(err),
			Message: "invalid YAML",
			Cause:   err,
		}
	}
	return &root, nil
}

var yamlLinePattern = regexp.MustCompile(`line (\d+)`)

// yamlErrorLine pulls the line number out of a yaml error message, or 0.
func yamlErrorLine(err error) int {
	m := yamlLinePattern.FindStringSubmatch(err.Error())
	if m == nil {
		return 0
	}
	line, convErr := strconv.Atoi(m[1])
	if convErr != nil {
		return 0
	}
	return line
}

func rootLine(root *yaml.Node) int {
	if root == nil {
		return 0
	}
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		return root.Content[0].Line
	}
	return root.Line
}

// inputError classifies a read failure, adding a hint when the file is missing.
func inputError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return &oaserrors.InputError{
			Path:     path,
			NotFound: true,
			Hint:     "check the file path and that the file exists",
			Cause:    err,
		}
	}
	return &oaserrors.InputError{Path: path, Cause: fmt.Errorf("parser: failed to read file: %w", err)}
}
