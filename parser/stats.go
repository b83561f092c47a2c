package parser

// DocumentStats contains statistical information about a document
type DocumentStats struct {
	PathCount      int // Number of paths defined
	OperationCount int // Total number of operations across all paths
	SchemaCount    int // Number of schemas/definitions
}

// GetDocumentStats returns statistics for a parsed document
func GetDocumentStats(doc *Document) DocumentStats {
	stats := DocumentStats{}
	if doc == nil {
		return stats
	}

	stats.PathCount = doc.Paths.Len()
	for _, item := range doc.Paths.All() {
		if item == nil {
			continue
		}
		stats.OperationCount += item.Operations.Len()
	}
	stats.SchemaCount = doc.Schemas().Len()

	return stats
}
