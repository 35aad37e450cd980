package assemble

import "github.com/cbegin/bms-go/lex"

// BpmChangeAt is a mid-song tempo change placed at a given position.
type BpmChangeAt struct {
	Time ObjTime
	Bpm  float64
}

// StopAt is a placed #STOP object: hold the chart for Beats/192 measures.
type StopAt struct {
	Time  ObjTime
	Beats uint32
}

// ScrollAt / SpeedAt place a scroll-rate or hi-speed change.
type ScrollAt struct {
	Time   ObjTime
	Factor float64
}

type SpeedAt struct {
	Time   ObjTime
	Factor float64
}

// SectionLenAt overrides the default 4/4 length of one measure.
type SectionLenAt struct {
	Track  lex.Track
	Factor float64
}

// BgaEvent places a layer's bitmap id at a time.
type BgaEvent struct {
	Time ObjTime
	Id   lex.ObjId
}

// ExtBga is the extended #@BGA/#BGA trim-and-blit definition.
type ExtBga struct {
	Id              lex.ObjId
	SourceId        lex.ObjId
	TrimTopLeft     lex.Point
	TrimSize        lex.Size
	TrimBottomRight lex.Point
	DrawPoint       lex.Point
}

// Wav is a #WAVxx sound definition, optionally refined by #EXWAVxx.
type Wav struct {
	Path      string
	Volume    lex.ExWavVolume
	Pan       lex.ExWavPan
	Frequency lex.ExWavFrequency
	HasFreq   bool
}

// Bmp is a #BMPxx image/video definition (id=00 is the POOR BGA's implicit bmp).
type Bmp struct {
	Path string
	Argb lex.Argb
}

// ChangeOptionAt places a player-option switch object.
type ChangeOptionAt struct {
	Time ObjTime
	Text string
}

// TextAt holds a #TEXTxx string together with its id.
type TextAt struct {
	Id   lex.ObjId
	Text string
}

// Note is one placed playable/invisible/mine/LN object.
type Note struct {
	Time ObjTime
	Side lex.PlayerSide
	Key  lex.Key
	Kind lex.NoteKind
	Id   lex.ObjId
}

// Score is the fully assembled chart: every field a processor contributes to.
type Score struct {
	// metadata
	Genre, Title, SubTitle, Artist, SubArtist string
	Comment                                   []string
	Email, Url                                string
	Maker                                     string
	Player                                    lex.PlayerMode
	PlayerSet                                 bool

	// music_info
	Difficulty    uint8
	DifficultySet bool
	PlayLevel     uint8
	PlayLevelSet  bool
	Total         string
	LnTypeMgq     bool

	// bpm
	Bpm        float64
	BpmDefs    map[lex.ObjId]float64
	BpmChanges []BpmChangeAt

	// judge
	Rank   lex.JudgeLevel
	ExRank map[lex.ObjId]lex.JudgeLevel

	// resources
	PathWav   string
	MidiFile  string
	OctFp     bool
	StageFile string
	Banner    string
	BackBmp   string
	VideoFile string

	// wav/bmp
	Wavs map[lex.ObjId]Wav
	Bmps map[lex.ObjId]Bmp

	// sprite (BGA)
	PoorMode  lex.PoorMode
	BgaBase   []BgaEvent
	BgaLayer  []BgaEvent
	BgaPoor   []BgaEvent
	ExtBgas   map[lex.ObjId]ExtBga

	// scroll/speed/stop/section-len
	ScrollDefs map[lex.ObjId]float64
	Scrolls    []ScrollAt
	SpeedDefs  map[lex.ObjId]float64
	Speeds     []SpeedAt
	StopDefs   map[lex.ObjId]uint32
	Stops      []StopAt
	SectionLen []SectionLenAt

	// option / text / volume
	Option        string
	ChangeOptions map[lex.ObjId]string
	ChangeOptionAts []ChangeOptionAt
	Texts         map[lex.ObjId]TextAt
	VolWav        lex.Volume

	// notes
	LnObj    lex.ObjId
	LnObjSet bool
	Bgm      []Note
	Notes    []Note
}

// NewScore returns a Score with every map initialized and defaults matching
// the grammar's documented fallbacks.
func NewScore() *Score {
	return &Score{
		Rank:          lex.JudgeLevelFromInt(2), // Normal
		VolWav:        lex.DefaultVolume(),
		PoorMode:      lex.DefaultPoorMode(),
		BpmDefs:       map[lex.ObjId]float64{},
		ExRank:        map[lex.ObjId]lex.JudgeLevel{},
		Wavs:          map[lex.ObjId]Wav{},
		Bmps:          map[lex.ObjId]Bmp{},
		ExtBgas:       map[lex.ObjId]ExtBga{},
		ScrollDefs:    map[lex.ObjId]float64{},
		SpeedDefs:     map[lex.ObjId]float64{},
		StopDefs:      map[lex.ObjId]uint32{},
		ChangeOptions: map[lex.ObjId]string{},
		Texts:         map[lex.ObjId]TextAt{},
	}
}
