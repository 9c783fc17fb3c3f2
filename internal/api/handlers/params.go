package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/api/validate"
	"github.com/KefouegFrank/zenithis-test-technique-backend/internal/models"
)

// parseTripFilter reads the listing filters from the query string. Unknown
// status values and malformed dates are validation errors; unknown sort
// columns are not, they fall back to the default ordering downstream.
func parseTripFilter(r *http.Request) (models.TripFilter, validate.Errs) {
	q := r.URL.Query()

	f := models.TripFilter{
		Search:      q.Get("search"),
		Departure:   q.Get("departure"),
		Destination: q.Get("destination"),
		SortBy:      q.Get("sort_by"),
		SortDir:     q.Get("sort_direction"),
	}

	var errs validate.Errs
	if s := q.Get("status"); s != "" {
		st := models.TripStatus(s)
		if !st.Valid() {
			errs = errs.Add("status", "The selected status is invalid.")
		} else {
			f.Status = st
		}
	}
	f.Date = parseDateParam(q.Get("date"), "date", &errs)
	f.StartDate = parseDateParam(q.Get("start_date"), "start_date", &errs)
	f.EndDate = parseDateParam(q.Get("end_date"), "end_date", &errs)

	return f, errs
}

func parseDateParam(raw, field string, errs *validate.Errs) *models.Date {
	if raw == "" {
		return nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		*errs = errs.Add(field, "The "+field+" is not a valid date.")
		return nil
	}
	d := models.NewDate(t.Year(), t.Month(), t.Day())
	return &d
}

// parsePage reads page/per_page, clamping through NewPageParams. Values that
// do not parse are treated as absent.
func parsePage(r *http.Request) models.PageParams {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	perPage, _ := strconv.Atoi(q.Get("per_page"))
	return models.NewPageParams(page, perPage)
}
