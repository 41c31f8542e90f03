package config

const (
	defaultProjectRoot      = "."
	defaultRequirementsFile = "requirements.txt"
	defaultIgnoreFile       = ".gitignore"
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
)

// Default returns a Config populated with the retention-predictor layout.
func Default() Config {
	return Config{
		Project: Project{
			Root: defaultProjectRoot,
		},
		Checks: Checks{
			RequiredDirs: []string{
				"data", "data/raw", "data/stage", "data/processed",
				"notebooks", "models",
			},
			RequiredFiles: []string{
				"README.md", "requirements.txt", ".gitignore",
				"notebooks/01_data_ingestion.ipynb",
				"notebooks/02_data_cleaning.ipynb",
				"notebooks/03_feature_engineering.ipynb",
				"notebooks/04_model_training.ipynb",
			},
			Notebooks: []string{
				"notebooks/01_data_ingestion.ipynb",
				"notebooks/02_data_cleaning.ipynb",
				"notebooks/03_feature_engineering.ipynb",
				"notebooks/04_model_training.ipynb",
			},
			DataLayers:       []string{"raw", "stage", "processed"},
			RequirementsFile: defaultRequirementsFile,
			RequiredPackages: []string{
				"pandas", "numpy", "tensorflow", "scikit-learn",
				"matplotlib", "seaborn", "faker", "jupyter",
			},
			IgnoreFile: defaultIgnoreFile,
			IgnorePatterns: []string{
				"__pycache__", "*.pyc", ".ipynb_checkpoints",
				"data/raw/*.csv", "models/", ".env",
			},
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
	}
}
