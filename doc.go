// Package umatrix is the root of a toolkit for hexagonal self-organizing map
// codebooks and their unified distance matrices.
//
// The work is split across small packages:
//
//	codebook/  - header and vector grid parsing of codebook documents
//	hexgrid/   - the hexagonal lattice: nodes, six-way adjacency, distances,
//	             clusters, spanning tree, gonum graph export
//	umatrix/   - the expanded U-Matrix cell layout with normalized intensities
//	source/    - file, HTTP, S3 and MinIO inputs with gzip/zstd/lz4 decoding
//	loader/    - parse → build pipeline with logging and Prometheus metrics
//	config/    - YAML configuration for the umatrix command
//	cmd/umatrix - command-line front end
//
// Quick example:
//
//	g, err := loader.Load([]byte("2 hexa 2 2\n0 0\n1 0\n0 1\n1 1\n"))
//	if err != nil {
//		log.Fatal(err)
//	}
//	d, _ := g.MaxDistance() // √2
//
// Lattice (even rows flush left, odd rows shifted right by half a cell):
//
//	row 0:  (0,0)   (1,0)   (2,0)
//	row 1:      (0,1)   (1,1)   (2,1)
//	row 2:  (0,2)   (1,2)   (2,2)
package umatrix
