// Package gridpath animates classic path-finding searches on a 2-D grid.
//
// What is gridpath?
//
//	A small toolkit that lets a user place a start, an end and walls on a
//	rectangular grid, then watch BFS, DFS, Dijkstra or A* explore it one
//	cell at a time before the discovered route is traced back:
//		• grid: cell states, endpoints, walls, 4-neighbourhood
//		• search: the four strategies plus predecessor reconstruction
//		• animate: paced event delivery, run lock, metrics
//		• layout: JSON/YAML import and export of start, end and walls
//		• session: click/drag editing protocol around one grid
//		• render: lipgloss terminal frames, recorders, fan-out
//		• server: HTTP API and websocket event stream
//		• config: YAML configuration with validation
//
// The searches are deterministic: neighbours are always expanded
// up, down, left, right, and every tie is broken by insertion order, so the
// same grid always animates the same way.
//
// Quick ASCII example (S start, E end, █ wall, ● route):
//
//	S ● ● ● ·
//	· █ █ ● ·
//	· · · ● E
//
// The command in cmd/gridpath serves the browser front end or runs a
// search headlessly in a terminal:
//
//	gridpath serve --listen :8080
//	gridpath run --algorithm astar --layout maze.json --frames
package gridpath
