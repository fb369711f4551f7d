package response

// RatingLabels are the ordinal names of ratings 1 through 5
var RatingLabels = []string{"Terrible", "Poor", "Average", "Very Good", "Excellent"}

const DistributionLabel = "Ratings Distribution"

// Palette is the purple scale the chart page builds its gradient from
type Palette struct {
	Default string `json:"default"`
	Half    string `json:"half"`
	Quarter string `json:"quarter"`
	Zero    string `json:"zero"`
}

var Purple = Palette{
	Default: "rgba(149, 76, 233, 1)",
	Half:    "rgba(149, 76, 233, 0.5)",
	Quarter: "rgba(149, 76, 233, 0.25)",
	Zero:    "rgba(149, 76, 233, 0)",
}

type GradientStop struct {
	Offset float64 `json:"offset"`
	Color  string  `json:"color"`
}

type ChartDataset struct {
	Label                string         `json:"label"`
	Data                 []int          `json:"data"`
	Fill                 bool           `json:"fill"`
	BorderWidth          int            `json:"borderWidth"`
	BorderColor          string         `json:"borderColor"`
	LineTension          float64        `json:"lineTension"`
	PointBackgroundColor string         `json:"pointBackgroundColor"`
	PointRadius          int            `json:"pointRadius"`
	Gradient             []GradientStop `json:"gradient"`
}

// ChartData is the labeled dataset handed to the chart component
type ChartData struct {
	Labels   []string       `json:"labels"`
	Datasets []ChartDataset `json:"datasets"`
	Total    int            `json:"total"`
}

// NewRatingsChart shapes a 5-bucket distribution into the line chart dataset
func NewRatingsChart(counts []int) *ChartData {
	data := make([]int, len(RatingLabels))
	copy(data, counts)

	total := 0
	for _, n := range data {
		total += n
	}

	labels := make([]string, len(RatingLabels))
	copy(labels, RatingLabels)

	return &ChartData{
		Labels: labels,
		Datasets: []ChartDataset{
			{
				Label:                DistributionLabel,
				Data:                 data,
				Fill:                 true,
				BorderWidth:          2,
				BorderColor:          Purple.Default,
				LineTension:          0.2,
				PointBackgroundColor: Purple.Default,
				PointRadius:          3,
				Gradient: []GradientStop{
					{Offset: 0, Color: Purple.Half},
					{Offset: 0.65, Color: Purple.Quarter},
					{Offset: 1, Color: Purple.Zero},
				},
			},
		},
		Total: total,
	}
}
