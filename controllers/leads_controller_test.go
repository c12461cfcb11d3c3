package controllers_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/NithinKrishna10/Menu-Card/config"
	"github.com/NithinKrishna10/Menu-Card/models"

	"github.com/stretchr/testify/assert"
)

func TestCreateLeads(t *testing.T) {
	router := setupTest(t)

	// No token: leads intake is public.
	w := doRequest(router, jsonRequest(t, "POST", "/user/leads", map[string]interface{}{
		"name":      "June",
		"contact":   "0712345678",
		"place":     "Kochi",
		"price":     500000,
		"franchise": 1,
	}, ""))

	assert.Equal(t, http.StatusCreated, w.Code)

	var created models.Leads
	env := decodeEnvelope(t, w)
	assert.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, "June", created.Name)
	assert.Equal(t, int64(500000), created.Price)
}

func TestCreateLeadsMissingFields(t *testing.T) {
	router := setupTest(t)

	w := doRequest(router, jsonRequest(t, "POST", "/user/leads", map[string]interface{}{
		"name": "June",
	}, ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetLeadses(t *testing.T) {
	router := setupTest(t)
	config.DB.Create(&models.Leads{Name: "June", Contact: "0712345678", Place: "Kochi"})

	w := doRequest(router, jsonRequest(t, "GET", "/user/leads", nil, ""))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "June")
}

func TestGetLeadsesEmpty(t *testing.T) {
	router := setupTest(t)

	w := doRequest(router, jsonRequest(t, "GET", "/user/leads", nil, ""))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteLeadsHard(t *testing.T) {
	router := setupTest(t)
	lead := models.Leads{Name: "June", Contact: "0712345678", Place: "Kochi"}
	config.DB.Create(&lead)

	w := doRequest(router, jsonRequest(t, "DELETE", "/user/leads/1", nil, ""))
	assert.Equal(t, http.StatusNoContent, w.Code)

	// Physically removed, not soft-deleted.
	var count int64
	config.DB.Unscoped().Model(&models.Leads{}).Count(&count)
	assert.Equal(t, int64(0), count)
}
