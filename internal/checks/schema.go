package checks

import (
	"context"
	"fmt"
	"seoeval/pkg/domain"
	"strings"

	"github.com/go-faster/errors"
	"github.com/go-faster/jx"
)

// jsonLDNode tells whether a JSON-LD block declares a vocabulary and a type.
type jsonLDNode struct {
	context bool
	typed   bool
}

// CheckSchema checks the JSON-LD structured data of a page. Each block must
// be valid JSON and every top level node must carry @context and @type.
// A node with an @graph is typed when every node of the graph is typed.
func (b *Baseline) CheckSchema(ctx context.Context, schema domain.SchemaData) (domain.IssueResult, error) {
	res := domain.IssueResult{Category: domain.CategorySchema}
	if err := checkContext(ctx); err != nil {
		return res, err
	}

	blocks := 0
	for i, block := range schema.JSONLD {
		if strings.TrimSpace(block) == "" {
			continue
		}
		blocks++

		if err := jx.DecodeStr(block).Validate(); err != nil {
			res.Add(CodeInvalidJSONLD, domain.SeverityError, fmt.Sprintf("block %d is not valid JSON: %v", i, err))

			continue
		}

		nodes, err := inspectJSONLD(block)
		if err != nil {
			res.Add(CodeInvalidJSONLD, domain.SeverityError, fmt.Sprintf("block %d is not JSON-LD: %v", i, err))

			continue
		}
		for _, n := range nodes {
			if !n.context {
				res.Add(CodeMissingSchemaContext, domain.SeverityWarning, fmt.Sprintf("block %d has a node without @context", i))
			}
			if !n.typed {
				res.Add(CodeMissingSchemaType, domain.SeverityWarning, fmt.Sprintf("block %d has a node without @type", i))
			}
		}
	}
	if blocks == 0 {
		res.Add(CodeMissingStructuredData, domain.SeverityInfo, "page has no JSON-LD structured data")
	}

	return res, nil
}

func inspectJSONLD(raw string) ([]jsonLDNode, error) {
	d := jx.DecodeStr(raw)
	switch d.Next() {
	case jx.Object:
		n, err := inspectNode(d)
		if err != nil {
			return nil, err
		}

		return []jsonLDNode{n}, nil
	case jx.Array:
		var nodes []jsonLDNode
		err := d.Arr(func(d *jx.Decoder) error {
			if d.Next() != jx.Object {
				return errors.New("array element is not an object")
			}
			n, err := inspectNode(d)
			if err != nil {
				return err
			}
			nodes = append(nodes, n)

			return nil
		})

		return nodes, err
	default:
		return nil, errors.New("top level value is not an object or array")
	}
}

func inspectNode(d *jx.Decoder) (jsonLDNode, error) {
	var (
		n          jsonLDNode
		hasGraph   bool
		graphTyped = true
	)
	err := d.ObjBytes(func(d *jx.Decoder, key []byte) error {
		switch string(key) {
		case "@context":
			n.context = true
		case "@type":
			n.typed = true
		case "@graph":
			if d.Next() != jx.Array {
				return errors.New("@graph is not an array")
			}
			hasGraph = true

			return d.Arr(func(d *jx.Decoder) error {
				if d.Next() != jx.Object {
					graphTyped = false

					return d.Skip()
				}
				child, err := inspectNode(d)
				if err != nil {
					return err
				}
				if !child.typed {
					graphTyped = false
				}

				return nil
			})
		}

		return d.Skip()
	})
	if err != nil {
		return n, errors.Wrap(err, "decode node")
	}
	if hasGraph && graphTyped {
		n.typed = true
	}

	return n, nil
}
