// File path: internal/api/wizard_handler.go
package api

import (
	"fmt"
	"net/http"

	"github.com/lexigen/lexigen/internal/docgen"
	"github.com/lexigen/lexigen/internal/wizard"
)

func (s *Server) handleWizardSteps(w http.ResponseWriter, r *http.Request) {
	raw := r.URL.Query().Get("doc_type")
	docType, err := docgen.ParseDocType(raw)
	if err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("doc_type %q: %w", raw, err))
		return
	}
	writeJSON(w, http.StatusOK, wizardStepsResponse{DocType: string(docType), Steps: wizard.Steps(docType)})
}

func (s *Server) handleConfigDefaults(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, configDefaultsResponse{Config: docgen.Defaults(), Fields: docgen.FieldNames()})
}
