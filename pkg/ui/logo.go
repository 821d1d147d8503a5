package ui

import "github.com/pterm/pterm"

const LogoASCII = `
      ____
     / __ \
    / /_/ /
    \__, /   graph
   /____/
`

func PrintBanner() {
	pterm.DefaultCenter.WithWriter(Out).Println(pterm.NewRGB(111, 76, 255).Sprint(LogoASCII))
}
