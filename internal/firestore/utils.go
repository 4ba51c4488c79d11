package firestore

import (
	"fmt"
	"strings"
)

func treeElement(name string, indent int, last bool) string {
	var sb strings.Builder
	sb.WriteString(strings.Repeat(" ", indent))
	if last {
		sb.WriteRune('└')
	} else {
		sb.WriteRune('├')
	}
	sb.WriteString(fmt.Sprintf(" %s", name))
	return sb.String()
}

func treeString(name string, indent int, last bool, value string) string {
	return treeElement(name, indent, last) + ": " + value
}

func treeInt(name string, indent int, last bool, value int) string {
	return treeElement(name, indent, last) + fmt.Sprintf(": %d", value)
}

func treeIntPtr(name string, indent int, last bool, value *int) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteRune(':')
	if value != nil {
		sb.WriteString(fmt.Sprintf(" %d", *value))
	}
	return sb.String()
}

// treeStats writes a stat map in key order.
func treeStats(name string, indent int, last bool, value map[string]float64) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteString(fmt.Sprintf(": map[%d] ↓↓↓", len(value)))
	for _, k := range sortedKeys(value) {
		sb.WriteString(fmt.Sprintf("\n│%*s%s: %g", indent+3, " ", k, value[k]))
	}
	return sb.String()
}

func treeStringMap(name string, indent int, last bool, value map[string]string) string {
	var sb strings.Builder
	sb.WriteString(treeElement(name, indent, last))
	sb.WriteString(fmt.Sprintf(": map[%d] ↓↓↓", len(value)))
	for _, k := range sortedKeys(value) {
		sb.WriteString(fmt.Sprintf("\n│%*s%s: %s", indent+3, " ", k, value[k]))
	}
	return sb.String()
}
