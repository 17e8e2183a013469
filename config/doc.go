// Package config loads logger configuration from ALGOLOG_*
// environment variables and optional YAML files and applies it to a
// Logger.
//
// Environment variables override file values. A minimal YAML file:
//
//	level: 4
//	printall: false
//	root: /var/data
//	flags:
//	  kmeans: false
//	  dbscan: true
//
// Apply the result before the first emission so root and properties
// settings influence sink creation:
//
//	cfg, err := config.LoadFile("clust4j.yaml")
//	if err != nil {
//	    ...
//	}
//	if err := cfg.Apply(logger.Default()); err != nil {
//	    ...
//	}
package config
