package constants

// INDEC series API defaults
const (
	// IndecAPIBaseURL is the official datos.gob.ar time-series API.
	IndecAPIBaseURL = "https://apis.datos.gob.ar"

	// IPCSeriesID identifies the monthly variation of the IPC nivel general
	// (consumer price index) published by INDEC.
	IPCSeriesID = "148.3_INIVELGEN_D_A_0_26"

	// IndexSourceIndec marks entries synced from the INDEC API.
	IndexSourceIndec = "indec"
	// IndexSourceManual marks entries loaded by hand.
	IndexSourceManual = "manual"
)
