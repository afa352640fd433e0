package fiber

type DataPointResponse struct {
	Start      int64  `json:"start" example:"1576454400"`
	End        int64  `json:"end" example:"1577059200"`
	Label      string `json:"label" example:"201951"`
	Value      int64  `json:"value" example:"5"`
	Increments int64  `json:"increments" example:"3"`
	Decrements int64  `json:"decrements" example:"1"`
	Difference int64  `json:"difference" example:"2"`
}

type StatsResponse struct {
	Statistic  string              `json:"statistic" example:"orders"`
	Start      int64               `json:"start"`
	End        int64               `json:"end"`
	GroupBy    string              `json:"group_by" example:"week"`
	Aligned    bool                `json:"aligned"`
	DataPoints []DataPointResponse `json:"data_points"`
}

type ValueResponse struct {
	Statistic string `json:"statistic" example:"orders"`
	At        int64  `json:"at" example:"1577836800"`
	Value     int64  `json:"value" example:"5"`
}

type ErrorResponse struct {
	Error   string `json:"error" example:"invalid_query"`
	Message string `json:"message" example:"unsupported granularity"`
}
