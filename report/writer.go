package report

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/nodeadmin/pathway-search/pathway"
)

const writerBufferSize = 256 * 1024 // 256 KB

// WriteJSON writes the report as compact JSON.
func WriteJSON(rep *Report, w io.Writer) error {
	return writeJSON(rep, w, "")
}

// WriteJSONPretty writes indented JSON.
func WriteJSONPretty(rep *Report, w io.Writer) error {
	return writeJSON(rep, w, "  ")
}

func writeJSON(rep *Report, w io.Writer, indent string) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	if indent != "" {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(rep); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteYAML writes the report as a YAML document.
func WriteYAML(rep *Report, w io.Writer) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	enc := yaml.NewEncoder(bw)
	enc.SetIndent(2)
	if err := enc.Encode(rep); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return err
	}
	return bw.Flush()
}

// WriteText writes the line-oriented console report: the answer to each
// molecule query, then the product totals of every pathway.
func WriteText(rep *Report, w io.Writer) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)

	fmt.Fprintf(bw, "Root pathway %s (%s)\n\n", rep.Root.Name, rep.Root.ID)
	for _, m := range rep.Most {
		WriteMost(bw, m)
	}
	fmt.Fprintln(bw)

	for _, pt := range rep.Totals {
		fmt.Fprintf(bw, "Pathway %s:\t\n", pt.Pathway)
		for _, p := range pt.Products {
			fmt.Fprintf(bw, "\t%s\t%d\n", p.Name, p.Count)
		}
	}

	if len(rep.Molecules) > 0 {
		fmt.Fprintln(bw, "\nMolecules:")
		for _, m := range rep.Molecules {
			fmt.Fprintf(bw, "\t%s\t%g\n", m.Name, m.Quantity)
		}
	}
	if rep.Tree != nil {
		fmt.Fprintln(bw, "\nTree:")
		writeTreeNode(bw, rep.Tree, 0)
	}
	return bw.Flush()
}

// WriteMost writes the answer to one molecule query.
func WriteMost(w io.Writer, m pathway.Most) {
	fmt.Fprintf(w, "The most %s in a pathway is %d, found in pathway(s):\n", m.Molecule, m.Count)
	for _, p := range m.Pathways {
		fmt.Fprintf(w, "\t%s\n", p)
	}
}

func writeTreeNode(w io.Writer, n *TreeNode, depth int) {
	fmt.Fprintf(w, "%d\t%s%s", depth, strings.Repeat("  ", depth), n.Name)
	if len(n.Products) > 0 {
		fmt.Fprintf(w, " -> %s", strings.Join(n.Products, ", "))
	}
	fmt.Fprintln(w)
	for _, c := range n.Children {
		writeTreeNode(w, c, depth+1)
	}
}

// WriteTree writes a depth-indented dump of a pathway tree.
func WriteTree(w io.Writer, root *pathway.Node) error {
	bw := bufio.NewWriterSize(w, writerBufferSize)
	writeTreeNode(bw, convertTree(root), 0)
	return bw.Flush()
}

// Write renders rep in format ("text", "json" or "yaml").
func Write(rep *Report, w io.Writer, format string, pretty bool) error {
	switch format {
	case "json":
		if pretty {
			return WriteJSONPretty(rep, w)
		}
		return WriteJSON(rep, w)
	case "yaml":
		return WriteYAML(rep, w)
	case "text", "":
		return WriteText(rep, w)
	default:
		return fmt.Errorf("report: unknown format %q", format)
	}
}

// WriteFile renders rep into the file at path.
func WriteFile(rep *Report, path, format string, pretty bool) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := Write(rep, f, format, pretty); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
