package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/go-drift/scene/pkg/scene"
)

// treeCommand creates the tree command.
func (c *CLI) treeCommand() *cobra.Command {
	var flags viewFlags

	cmd := &cobra.Command{
		Use:   "tree [scene.yaml|scene.toml]",
		Short: "Print the element tree with listeners and flags",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			tester, _, err := c.open(args[0], flags)
			if err != nil {
				return err
			}
			g := tester.Gui()
			c.printTree(g, g.Root(), 0)
			return nil
		},
	}

	cmd.Flags().Float32Var(&flags.width, "width", 0, "override viewport width")
	cmd.Flags().Float32Var(&flags.height, "height", 0, "override viewport height")

	return cmd
}

// printTree prints hidden elements too, marked as such.
func (c *CLI) printTree(g *scene.Gui, key scene.Key, depth int) {
	el := g.MustElement(key)

	var tags []string
	if el.Selectable() {
		tags = append(tags, "selectable")
	}
	if el.Hidden() {
		tags = append(tags, "hidden")
	}
	for _, l := range el.Listeners() {
		tags = append(tags, fmt.Sprintf("%s:%s", l.Type, l.Kind))
	}

	line := strings.Repeat("  ", depth) + styleKey.Render(key.String())
	if el.Label != "" {
		line += " " + styleLabel.Render(el.Label)
	}
	if len(tags) > 0 {
		line += " " + styleDim.Render("["+strings.Join(tags, " ")+"]")
	}
	fmt.Fprintln(c.Out, line)

	for _, child := range el.Children() {
		c.printTree(g, child, depth+1)
	}
}
