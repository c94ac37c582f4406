package config

const (
	// DefaultManifestPath is the default class manifest file
	DefaultManifestPath = "phpunit.yaml"
	// DefaultOutputJSONFile is the default build report file name
	DefaultOutputJSONFile = "build-report.json"
	// DefaultOutputJSONDir is the default output directory
	DefaultOutputJSONDir = "storage"
	// DefaultWorkers is the default number of build workers
	DefaultWorkers = 4
)
