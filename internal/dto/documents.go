package dto

// AnalyzeDocumentRequest represents a document submitted for analysis
type AnalyzeDocumentRequest struct {
	Filename string `json:"filename" binding:"required,max=255"`
	Content  string `json:"content" binding:"required"`
}
