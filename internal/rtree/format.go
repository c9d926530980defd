package rtree

import "fmt"

// sizeUnits are the display units, smallest first. TB is the ceiling.
var sizeUnits = [...]string{"B", "KB", "MB", "GB", "TB"} //nolint:gochecknoglobals // Lookup table

// FormatSize renders a byte count with a fixed unit.
// Counts below 1024 are printed as whole bytes ("512 B"), everything else with
// two decimals in the largest unit that keeps the value below 1024 ("1.50 KB").
func FormatSize(bytes uint64) string {
	if bytes < 1024 {
		return fmt.Sprintf("%d B", bytes)
	}

	value := float64(bytes)
	unit := 0

	for value >= 1024.0 && unit < len(sizeUnits)-1 {
		value /= 1024.0
		unit++
	}

	return fmt.Sprintf("%.2f %s", value, sizeUnits[unit])
}
