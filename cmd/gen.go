package main

import (
	"fmt"
	"iter"
	"os"
	"strconv"
	"unicode/utf8"

	"bitcat/pkg/bitflip"
	"bitcat/pkg/charset"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"golang.org/x/net/idna"
)

// genOptions carries the flags of the gen subcommand
type genOptions struct {
	raw      bool
	ascii    bool
	charset  string
	punycode bool
	table    bool
	noColor  bool
	input    string
}

var flipColor = color.New(color.FgHiYellow, color.Bold)

// runGen prints every variant of the input that is one flipped bit away
func runGen(o genOptions) {
	if o.noColor {
		color.NoColor = true
	}
	variants, err := variantSequence(o)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	if o.table {
		printTable(o, variants)
		return
	}
	printLines(o, variants)
}

// variantSequence builds the lazy variant sequence the flags describe
func variantSequence(o genOptions) (iter.Seq[string], error) {
	if o.raw {
		generate := bitflip.Bytes
		if o.ascii {
			generate = bitflip.ASCIIBytes
		}
		raw := generate([]byte(o.input))
		seq := func(yield func(string) bool) {
			for variant := range raw {
				if !yield(string(variant)) {
					return
				}
			}
		}
		return seq, nil
	}
	class, err := charset.Lookup(o.charset)
	if err != nil {
		return nil, err
	}
	generate := bitflip.Text
	if o.ascii {
		generate = bitflip.ASCIIText
	}
	seq, err := generate(o.input)
	if err != nil {
		return nil, err
	}
	return charset.Filter(seq, class), nil
}

func printLines(o genOptions, variants iter.Seq[string]) {
	for variant := range variants {
		line := variant
		if o.raw {
			line = strconv.Quote(variant)
		} else if pos, _, ok := bitflip.FlipPosition([]byte(o.input), []byte(variant)); ok {
			line = highlightFlip(variant, pos)
		}
		if o.punycode {
			line += "\t" + punycodeForm(variant)
		}
		fmt.Println(line)
	}
}

func printTable(o genOptions, variants iter.Seq[string]) {
	table := tablewriter.NewWriter(os.Stdout)
	header := []string{"Variant", "Byte", "Bit"}
	alignment := []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER}
	if o.punycode {
		header = []string{"Variant", "Punycode", "Byte", "Bit"}
		alignment = []int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_CENTER, tablewriter.ALIGN_CENTER}
	}
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment(alignment)

	count := 0
	for variant := range variants {
		pos, bit, _ := bitflip.FlipPosition([]byte(o.input), []byte(variant))
		cell := variant
		if o.raw {
			cell = strconv.Quote(variant)
		}
		row := []string{cell, strconv.Itoa(pos), strconv.Itoa(bit)}
		if o.punycode {
			row = []string{cell, punycodeForm(variant), strconv.Itoa(pos), strconv.Itoa(bit)}
		}
		table.Append(row)
		count++
	}
	footer := make([]string, len(header))
	footer[0] = "Total"
	footer[len(footer)-1] = strconv.Itoa(count)
	table.SetFooter(footer)
	table.Render()
}

// highlightFlip colors the rune holding the flipped byte
func highlightFlip(variant string, pos int) string {
	if pos < 0 || pos >= len(variant) {
		return variant
	}
	start := pos
	for start > 0 && !utf8.RuneStart(variant[start]) {
		start--
	}
	_, size := utf8.DecodeRuneInString(variant[start:])
	end := start + size
	return variant[:start] + flipColor.Sprint(variant[start:end]) + variant[end:]
}

func punycodeForm(variant string) string {
	p, err := idna.ToASCII(variant)
	if err != nil {
		return ""
	}
	return p
}
