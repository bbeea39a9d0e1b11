package mandel

import "sort"

// Classic regions / landmarks in the Mandelbrot set, selectable by name on
// the command line.
var regions = map[string]Viewport{
	// Seahorse Valley – dense filaments and repeating seahorse curls
	"seahorse-valley": {Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},

	// Elephant Valley – large bulb with trunk-like tendrils
	"elephant-valley": {Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	"spiral-minibrot": {Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},

	// Triple Spiral – threefold symmetric spiral structure
	"triple-spiral": {Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},

	// Valley of the Dragon – deep, highly detailed spiral filaments
	"valley-of-the-dragon": {Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},

	// Minibrot in a Mini-Spiral – self-similar copy inside a spiral arm
	"minibrot-in-mini-spiral": {Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220},
}

// RegionByName looks up a landmark viewport.
func RegionByName(name string) (Viewport, bool) {
	v, ok := regions[name]
	return v, ok
}

// RegionNames returns the landmark names, sorted for help text.
func RegionNames() []string {
	names := make([]string, 0, len(regions))
	for name := range regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
