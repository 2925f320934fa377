package httputils

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mailru/easyjson"
)

func Respond(w http.ResponseWriter, code int, data easyjson.Marshaler) {
	w.WriteHeader(code)
	if data != nil {
		_, _, err := easyjson.MarshalToHTTPResponseWriter(data, w)
		if err != nil {
			log.Print(err, data)
			return
		}
	}
}

func RespondErr(w http.ResponseWriter, code int, data interface{}) {
	w.WriteHeader(code)
	if data != nil {
		err := json.NewEncoder(w).Encode(data)
		if err != nil {
			log.Print(err, data)
			return
		}
	}
}

func RespondMessage(w http.ResponseWriter, code int, message string) {
	RespondErr(w, code, map[string]string{
		"message": message,
	})
}
