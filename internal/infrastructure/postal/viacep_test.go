package postal

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fcamara/user-address-api/internal/core/domain"
)

func TestViaCEPClient_Lookup_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"cep": "01001-000",
			"logradouro": "Praça da Sé",
			"complemento": "lado ímpar",
			"bairro": "Sé",
			"localidade": "São Paulo",
			"uf": "SP"
		}`))
	}))
	defer srv.Close()

	client := NewViaCEPClient(srv.URL, time.Second)
	result, err := client.Lookup(context.Background(), "01001-000")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}

	if gotPath != "/ws/01001-000/json/" {
		t.Fatalf("unexpected request path %q", gotPath)
	}
	if result.Street != "Praça da Sé" {
		t.Fatalf("expected street from logradouro, got %q", result.Street)
	}
	if result.District != "Sé" {
		t.Fatalf("expected district from bairro, got %q", result.District)
	}
	if result.City != "São Paulo" {
		t.Fatalf("expected city from localidade, got %q", result.City)
	}
	if result.State != "SP" {
		t.Fatalf("expected state from uf, got %q", result.State)
	}
}

func TestViaCEPClient_Lookup_UnknownCode(t *testing.T) {
	// ViaCEP answers 200 with an erro flag for well-formed but unknown codes.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"erro": true}`))
	}))
	defer srv.Close()

	client := NewViaCEPClient(srv.URL, time.Second)
	if _, err := client.Lookup(context.Background(), "99999-999"); err != domain.ErrZipCodeNotFound {
		t.Fatalf("expected ErrZipCodeNotFound, got %v", err)
	}
}

func TestViaCEPClient_Lookup_BadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	}))
	defer srv.Close()

	client := NewViaCEPClient(srv.URL, time.Second)
	if _, err := client.Lookup(context.Background(), "bogus"); err != domain.ErrZipCodeNotFound {
		t.Fatalf("expected ErrZipCodeNotFound, got %v", err)
	}
}

func TestViaCEPClient_Lookup_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`not json`))
	}))
	defer srv.Close()

	client := NewViaCEPClient(srv.URL, time.Second)
	if _, err := client.Lookup(context.Background(), "01001-000"); err != domain.ErrZipCodeNotFound {
		t.Fatalf("expected ErrZipCodeNotFound, got %v", err)
	}
}

func TestViaCEPClient_Lookup_ServerDown(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	srv.Close()

	client := NewViaCEPClient(srv.URL, time.Second)
	if _, err := client.Lookup(context.Background(), "01001-000"); err != domain.ErrZipCodeNotFound {
		t.Fatalf("expected ErrZipCodeNotFound, got %v", err)
	}
}
