// Package bipartite renders a cost matrix and its assignment as a
// two-rank bipartite graph: agents (rows) on top, tasks (columns) below,
// with the matched pairs drawn as emphasized edges labeled by their cost.
package bipartite

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"

	"github.com/goccy/go-graphviz"

	"github.com/maandree/hungarian-algorithm-n3/pkg/munkres"
)

// ToDOT converts a matrix and its assignment to Graphviz DOT format.
// Only matched edges are drawn; emitting all n·m edges makes the diagram
// unreadable beyond trivial sizes. The resulting DOT string can be
// rendered with [RenderSVG].
func ToDOT(matrix [][]int64, assignment []munkres.Position) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, style=filled, fontsize=18];\n")
	buf.WriteString("  nodesep=0.4;\n")
	buf.WriteString("\n")

	buf.WriteString("  { rank=source;\n")
	for i := range matrix {
		fmt.Fprintf(&buf, "    \"r%d\" [label=\"R%d\", fillcolor=lightblue];\n", i, i)
	}
	buf.WriteString("  }\n")

	buf.WriteString("  { rank=sink;\n")
	if len(matrix) > 0 {
		for j := range matrix[0] {
			fmt.Fprintf(&buf, "    \"c%d\" [label=\"C%d\", fillcolor=lightyellow];\n", j, j)
		}
	}
	buf.WriteString("  }\n\n")

	for _, p := range assignment {
		fmt.Fprintf(&buf, "  \"r%d\" -- \"c%d\" [label=\"%d\", penwidth=2, color=darkgreen];\n",
			p.Row, p.Col, matrix[p.Row][p.Col])
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox rewrites the SVG root element so that the viewBox
// starts at the origin and the width/height match it in pixels, which
// keeps browsers from scaling the image unexpectedly.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
