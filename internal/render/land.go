package render

import "github.com/ctessum/geom"

// landPolygons is a very coarse world land outline (simplified from the
// Natural Earth 110m land layer) used when no coastline file is given.
// Longitudes are in [-180, 180], rings are unclosed.
var landPolygons = []geom.Polygon{
	// North and Central America
	{{
		{X: -168, Y: 65}, {X: -166, Y: 68}, {X: -156, Y: 71}, {X: -140, Y: 70},
		{X: -128, Y: 70}, {X: -110, Y: 73}, {X: -95, Y: 73}, {X: -85, Y: 70},
		{X: -82, Y: 67}, {X: -77, Y: 62}, {X: -64, Y: 60}, {X: -55, Y: 52},
		{X: -66, Y: 44}, {X: -70, Y: 42}, {X: -75, Y: 35}, {X: -81, Y: 31},
		{X: -80, Y: 25}, {X: -84, Y: 30}, {X: -90, Y: 29}, {X: -97, Y: 26},
		{X: -97, Y: 21}, {X: -95, Y: 18}, {X: -87, Y: 21}, {X: -83, Y: 9},
		{X: -80, Y: 8}, {X: -85, Y: 11}, {X: -95, Y: 16}, {X: -105, Y: 20},
		{X: -110, Y: 23}, {X: -114, Y: 30}, {X: -117, Y: 33}, {X: -124, Y: 40},
		{X: -124, Y: 48}, {X: -132, Y: 55}, {X: -140, Y: 60}, {X: -152, Y: 59},
		{X: -165, Y: 55},
	}},
	// South America
	{{
		{X: -78, Y: 7}, {X: -75, Y: 10}, {X: -71, Y: 12}, {X: -63, Y: 10},
		{X: -52, Y: 5}, {X: -50, Y: 0}, {X: -44, Y: -3}, {X: -35, Y: -7},
		{X: -39, Y: -13}, {X: -41, Y: -22}, {X: -48, Y: -28}, {X: -53, Y: -34},
		{X: -58, Y: -39}, {X: -65, Y: -41}, {X: -65, Y: -47}, {X: -69, Y: -52},
		{X: -71, Y: -54}, {X: -75, Y: -50}, {X: -73, Y: -44}, {X: -73, Y: -37},
		{X: -71, Y: -30}, {X: -70, Y: -18}, {X: -75, Y: -14}, {X: -81, Y: -6},
		{X: -80, Y: 1}, {X: -77, Y: 4},
	}},
	// Africa
	{{
		{X: -6, Y: 35}, {X: 10, Y: 37}, {X: 20, Y: 33}, {X: 30, Y: 31},
		{X: 33, Y: 30}, {X: 37, Y: 21}, {X: 43, Y: 12}, {X: 51, Y: 12},
		{X: 46, Y: 5}, {X: 41, Y: -2}, {X: 39, Y: -7}, {X: 35, Y: -18},
		{X: 33, Y: -26}, {X: 27, Y: -34}, {X: 20, Y: -35}, {X: 18, Y: -32},
		{X: 12, Y: -18}, {X: 9, Y: -7}, {X: 9, Y: 4}, {X: 0, Y: 6},
		{X: -8, Y: 5}, {X: -13, Y: 9}, {X: -17, Y: 15}, {X: -16, Y: 21},
		{X: -10, Y: 29},
	}},
	// Eurasia
	{{
		{X: -9, Y: 39}, {X: -9, Y: 43}, {X: -5, Y: 48}, {X: 2, Y: 51},
		{X: 8, Y: 54}, {X: 5, Y: 58}, {X: 10, Y: 59}, {X: 5, Y: 62},
		{X: 14, Y: 68}, {X: 25, Y: 71}, {X: 30, Y: 70}, {X: 40, Y: 67},
		{X: 45, Y: 68}, {X: 60, Y: 69}, {X: 75, Y: 73}, {X: 90, Y: 76},
		{X: 105, Y: 77}, {X: 120, Y: 73}, {X: 140, Y: 72}, {X: 160, Y: 70},
		{X: 170, Y: 67}, {X: 179, Y: 65}, {X: 178, Y: 62}, {X: 162, Y: 56},
		{X: 155, Y: 50}, {X: 142, Y: 54}, {X: 135, Y: 45}, {X: 130, Y: 42},
		{X: 126, Y: 38}, {X: 122, Y: 37}, {X: 121, Y: 31}, {X: 114, Y: 22},
		{X: 109, Y: 18}, {X: 105, Y: 10}, {X: 103, Y: 1}, {X: 100, Y: 8},
		{X: 98, Y: 15}, {X: 94, Y: 17}, {X: 90, Y: 22}, {X: 87, Y: 21},
		{X: 80, Y: 15}, {X: 77, Y: 8}, {X: 73, Y: 20}, {X: 67, Y: 24},
		{X: 57, Y: 25}, {X: 59, Y: 22}, {X: 55, Y: 17}, {X: 45, Y: 13},
		{X: 43, Y: 15}, {X: 39, Y: 21}, {X: 35, Y: 28}, {X: 35, Y: 36},
		{X: 30, Y: 36}, {X: 27, Y: 38}, {X: 23, Y: 36}, {X: 19, Y: 40},
		{X: 15, Y: 38}, {X: 18, Y: 40}, {X: 12, Y: 44}, {X: 9, Y: 44},
		{X: 3, Y: 43}, {X: 0, Y: 40}, {X: -6, Y: 36}, {X: -9, Y: 37},
	}},
	// Australia
	{{
		{X: 114, Y: -22}, {X: 113, Y: -26}, {X: 115, Y: -34}, {X: 124, Y: -33},
		{X: 130, Y: -32}, {X: 138, Y: -35}, {X: 147, Y: -38}, {X: 150, Y: -37},
		{X: 153, Y: -28}, {X: 153, Y: -25}, {X: 146, Y: -19}, {X: 142, Y: -11},
		{X: 136, Y: -12}, {X: 132, Y: -11}, {X: 126, Y: -14}, {X: 122, Y: -18},
	}},
	// Greenland
	{{
		{X: -45, Y: 60}, {X: -53, Y: 65}, {X: -55, Y: 70}, {X: -58, Y: 76},
		{X: -68, Y: 78}, {X: -60, Y: 82}, {X: -40, Y: 83}, {X: -25, Y: 82},
		{X: -20, Y: 79}, {X: -22, Y: 70}, {X: -40, Y: 65},
	}},
	// Antarctica
	{{
		{X: -180, Y: -70}, {X: -90, Y: -73}, {X: -60, Y: -64}, {X: -45, Y: -70},
		{X: 0, Y: -69}, {X: 60, Y: -66}, {X: 90, Y: -66}, {X: 150, Y: -68},
		{X: 180, Y: -70}, {X: 180, Y: -90}, {X: -180, Y: -90},
	}},
	// Madagascar
	{{
		{X: 44, Y: -16}, {X: 50, Y: -16}, {X: 47, Y: -25}, {X: 44, Y: -25},
		{X: 43, Y: -20},
	}},
	// Borneo
	{{
		{X: 109, Y: 1}, {X: 113, Y: 4}, {X: 117, Y: 7}, {X: 119, Y: 1},
		{X: 116, Y: -3}, {X: 110, Y: -2},
	}},
	// New Guinea
	{{
		{X: 131, Y: -1}, {X: 138, Y: -2}, {X: 146, Y: -6}, {X: 150, Y: -10},
		{X: 141, Y: -9}, {X: 134, Y: -4},
	}},
	// Japan
	{{
		{X: 130, Y: 31}, {X: 136, Y: 35}, {X: 141, Y: 36}, {X: 142, Y: 43},
		{X: 145, Y: 44}, {X: 141, Y: 45}, {X: 137, Y: 37}, {X: 131, Y: 34},
	}},
	// Britain
	{{
		{X: -5, Y: 50}, {X: 1, Y: 51}, {X: 0, Y: 53}, {X: -2, Y: 56},
		{X: -4, Y: 58}, {X: -6, Y: 55},
	}},
}
