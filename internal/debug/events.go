package debug

// RenderStartData opens a render or export pass.
type RenderStartData struct {
	Text       string  `json:"text"`
	Runes      int     `json:"runes"`
	Lines      int     `json:"lines"`
	Mode       string  `json:"mode"`
	ModuleSize float64 `json:"module_size"`
	Stem       float64 `json:"stem"`
	Width      int     `json:"width"`
	Height     int     `json:"height"`
	Backend    string  `json:"backend,omitempty"`
}

// RenderEndData closes a render pass.
type RenderEndData struct {
	Glyphs     int   `json:"glyphs"`
	Shapes     int   `json:"shapes"`
	Primitives int   `json:"primitives"`
	ElapsedMs  int64 `json:"elapsed_ms"`
}

// LineData describes the placement of one text line.
type LineData struct {
	Line   int     `json:"line"`
	Runes  int     `json:"runes"`
	Width  float64 `json:"width"`
	StartX float64 `json:"start_x"`
	Y      float64 `json:"y"`
}

// GlyphData describes one placed glyph.
type GlyphData struct {
	Line     int     `json:"line"`
	Index    int     `json:"index"`
	Rune     rune    `json:"rune"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Modules  int     `json:"modules"`
	Fallback bool    `json:"fallback,omitempty"`
}

// RandomDrawData records one random-mode parameter draw.
type RandomDrawData struct {
	Scope   string  `json:"scope"`
	Key     string  `json:"key"`
	StemMul float64 `json:"stem_mul"`
	Strokes int     `json:"strokes"`
	Gap     float64 `json:"gap"`
}

// AnalysisData summarises the connectivity of one glyph.
type AnalysisData struct {
	Rune        rune   `json:"rune"`
	Connections int    `json:"connections"`
	Endpoints   int    `json:"endpoints"`
	Components  int    `json:"components"`
	Topology    string `json:"topology"`
}

// ExportData closes an export.
type ExportData struct {
	Backend string `json:"backend"`
	Bytes   int    `json:"bytes"`
	Name    string `json:"name,omitempty"`
}

// ParamsData records a parameter change on a session.
type ParamsData struct {
	Field        string `json:"field"`
	Value        string `json:"value"`
	CacheCleared bool   `json:"cache_cleared"`
}

// ErrorData records a failure.
type ErrorData struct {
	Type    string                 `json:"type"`
	Message string                 `json:"message"`
	Context map[string]interface{} `json:"context,omitempty"`
}
