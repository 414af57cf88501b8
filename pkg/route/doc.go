// Package route implements the path enumerator and route optimiser:
// walking a map's connectivity graph from a company's tokens to produce
// every legal path, then choosing the assignment of trains to paths that
// maximises net revenue under the game's bonus and conflict rules.
package route
