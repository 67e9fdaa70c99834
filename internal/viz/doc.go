// Package viz renders units and quantities in the terminal.
//
//   - [UnitTable] and [FamilyTable]: lipgloss tables of the registry
//   - [PlotConversion] and [PlotVector]: asciigraph line plots
//   - [Converter]: an interactive Bubble Tea converter
//
// # Key Bindings
//
//	Tab    - Switch between quantity and target unit
//	Enter  - Convert
//	Ctrl+U - Clear field
//	Esc    - Quit
package viz
