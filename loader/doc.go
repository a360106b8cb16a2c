// Package loader turns a codebook document into a hexagonal grid.
//
// Load runs the pure pipeline: parse the header, parse xDim·yDim vectors,
// build the grid and its adjacency. LoadFrom and LoadAsync put the single
// asynchronous step in front of it (fetching bytes from a source.Source)
// and are the only operations that block or accept a context.
//
// Loads are all-or-nothing. Any failure, including cancellation, yields no
// grid. A Loader carries an optional structured Logger and Prometheus
// Metrics; both are off by default.
package loader
