package parsers

import (
	"encoding/xml"
	"strings"
)

// rowTags are the element names recognized as repeating data rows,
// checked in this order.
var rowTags = []string{"row", "record", "item", "entry", "user", "member", "client"}

type xmlNode struct {
	XMLName xml.Name
	Attrs   []xml.Attr `xml:",any,attr"`
	Text    string     `xml:",chardata"`
	Nodes   []xmlNode  `xml:",any"`
}

// ParseXML extracts records from an XML document. Row elements are located
// by well-known tag names; when none match, the tag of the document root's
// first child is treated as the repeating row tag. Child element names and
// row attributes share one flat field namespace, attributes written last.
func ParseXML(content string) ParseResult {
	var root xmlNode
	if err := xml.Unmarshal([]byte(content), &root); err != nil {
		return failure("Invalid XML format")
	}

	rows := findRows(&root)
	if len(rows) == 0 {
		return failure("No data rows found in XML")
	}

	var headers []string
	seen := map[string]bool{}
	addHeader := func(name string) {
		if !seen[name] {
			seen[name] = true
			headers = append(headers, name)
		}
	}

	records := make([]Record, 0, len(rows))
	for _, row := range rows {
		record := Record{}
		for _, child := range row.Nodes {
			name := child.XMLName.Local
			record[name] = strings.TrimSpace(textContent(&child))
			addHeader(name)
		}
		for _, attr := range row.Attrs {
			// Attributes merge in after child elements and win on collision.
			record[attr.Name.Local] = attr.Value
			addHeader(attr.Name.Local)
		}
		records = append(records, record)
	}

	return result(records, headers)
}

// findRows returns the repeating row elements of the document.
func findRows(root *xmlNode) []*xmlNode {
	for _, tag := range rowTags {
		var rows []*xmlNode
		collectByName(root, tag, &rows)
		if len(rows) > 0 {
			return rows
		}
	}

	// Fall back to the tag of the root's first child element.
	if len(root.Nodes) == 0 {
		return nil
	}
	tag := strings.ToLower(root.Nodes[0].XMLName.Local)
	var rows []*xmlNode
	collectByName(root, tag, &rows)
	return rows
}

func collectByName(node *xmlNode, tag string, out *[]*xmlNode) {
	for i := range node.Nodes {
		child := &node.Nodes[i]
		if strings.ToLower(child.XMLName.Local) == tag {
			*out = append(*out, child)
		}
		collectByName(child, tag, out)
	}
}

func textContent(node *xmlNode) string {
	if len(node.Nodes) == 0 {
		return node.Text
	}
	var b strings.Builder
	b.WriteString(node.Text)
	for i := range node.Nodes {
		b.WriteString(textContent(&node.Nodes[i]))
	}
	return b.String()
}
