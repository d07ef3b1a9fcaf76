package dto

// CargaResponse summarizes one processed upload.
type CargaResponse struct {
	Fecha           string `json:"fecha"`
	FilasProcesadas int    `json:"filas_procesadas"`
	TotalVendido    int    `json:"total_vendido"`
}
