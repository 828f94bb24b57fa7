/*
Package cliparse handles configuration from CLI flags and environment
variables. Flags win over the environment; unset values fall back to
defaults where one exists.

	-p / PORT              server port (default 8501)
	-d / DATABASE_URL      database URL or DSN (required)
	-t / DATABASE_TYPE     sqlite or postgres (default sqlite)
	-collection / COLLECTION_FILE   collection workbook (default NPS.xlsx)
	-selections / SELECTIONS_FILE   selections workbook (default NPS_Selections.xlsx)
	-n / SAMPLE_SIZE       polishes per batch (default 5)
*/
package cliparse
