package pivot

import (
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"SalesPivotSaas/api/pivot/engine"
	"SalesPivotSaas/internal/config"
)

// StartPivotService wires the pivot routes and serves them on :4153.
func StartPivotService(rules *config.Rules) {
	eng := engine.New(rules)

	router := mux.NewRouter()
	router.HandleFunc("/pivot/hello", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("Hello from Pivot Service"))
	}).Methods("GET")
	router.Handle("/pivot/upload", UploadReport(eng)).Methods("POST")
	router.Handle("/pivot/target-template", GenerateTargetTemplate(rules)).Methods("POST")

	log.Println("Pivot Service started on :4153")
	err := http.ListenAndServe(":4153", router)
	if err != nil {
		log.Fatalf("Pivot Service failed: %v", err)
	}
}
