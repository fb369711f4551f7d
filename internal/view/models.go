package view

import (
	"encoding/json"
	"fmt"
	"html/template"

	"customer-feedback/internal/dto/request"
	"customer-feedback/internal/dto/response"
)

type RatingOption struct {
	Value string
	Label string
}

// RatingOptions are the select choices, "1" (Terrible) to "5" (Excellent)
func RatingOptions() []RatingOption {
	options := make([]RatingOption, len(response.RatingLabels))
	for i, label := range response.RatingLabels {
		options[i] = RatingOption{Value: fmt.Sprint(i + 1), Label: label}
	}
	return options
}

type FormPage struct {
	FormID  string
	Values  request.FeedbackForm
	Errors  map[string]string
	Notice  string
	Options []RatingOption
}

func NewFormPage(formID string, values request.FeedbackForm, errs map[string]string, notice string) FormPage {
	if errs == nil {
		errs = map[string]string{}
	}
	return FormPage{
		FormID:  formID,
		Values:  values,
		Errors:  errs,
		Notice:  notice,
		Options: RatingOptions(),
	}
}

type ChartPage struct {
	Chart  template.JS
	Total  int
	Notice string
}

func NewChartPage(chart *response.ChartData, notice string) (ChartPage, error) {
	raw, err := json.Marshal(chart)
	if err != nil {
		return ChartPage{}, fmt.Errorf("encode chart: %w", err)
	}
	return ChartPage{
		Chart:  template.JS(raw),
		Total:  chart.Total,
		Notice: notice,
	}, nil
}
