package assets

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"log"
	"math"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
)

// 音效名
const (
	SoundPlace    = "place"
	SoundAiPlace  = "ai_place"
	SoundSelect   = "select"
	SoundInvalid  = "invalid"
	SoundSkill    = "skill"
	SoundHit      = "hit"
	SoundRewind   = "rewind"
	SoundGameOver = "game_over"
)

// SampleRate 所有音效统一 44.1kHz、16 位、双声道
const SampleRate = 44100

// tone 一段音符：起止频率（线性滑音）+ 时长
type tone struct {
	from, to float64
	dur      time.Duration
}

var soundBank = map[string][]tone{
	SoundPlace:    {{660, 660, 70 * time.Millisecond}},
	SoundAiPlace:  {{440, 440, 70 * time.Millisecond}},
	SoundSelect:   {{880, 990, 50 * time.Millisecond}},
	SoundInvalid:  {{180, 150, 140 * time.Millisecond}},
	SoundSkill:    {{520, 1040, 160 * time.Millisecond}},
	SoundHit:      {{700, 700, 80 * time.Millisecond}, {350, 220, 180 * time.Millisecond}},
	SoundRewind:   {{1040, 390, 260 * time.Millisecond}},
	SoundGameOver: {{523, 523, 120 * time.Millisecond}, {659, 659, 120 * time.Millisecond}, {784, 784, 260 * time.Millisecond}},
}

type AudioManager struct {
	ctx     *audio.Context
	buffers map[string][]byte // 预先合成好的 WAV

	mu      sync.Mutex
	players []*audio.Player // 播放中的 player，保留引用防止被 GC
}

// NewAudioManager 接收 main 创建好的 *audio.Context，预先合成全部音效
func NewAudioManager(ctx *audio.Context) (*AudioManager, error) {
	if ctx.SampleRate() != SampleRate {
		return nil, fmt.Errorf("音频采样率必须是 %d，实际 %d", SampleRate, ctx.SampleRate())
	}
	buf := make(map[string][]byte, len(soundBank))
	for name, tones := range soundBank {
		buf[name] = encodeWAV(synthesize(tones...), SampleRate)
	}
	return &AudioManager{ctx: ctx, buffers: buf}, nil
}

// Play 播放 key 对应音效。m 为 nil 时静音。
func (m *AudioManager) Play(key string) {
	if m == nil {
		return
	}
	p, err := m.newPlayer(key)
	if err != nil {
		log.Printf("AudioManager.Play：%v", err)
		return
	}
	p.Play()
	m.mu.Lock()
	m.players = append(m.players, p)
	m.mu.Unlock()
}

// PlaySequential 依次播放，前一个播完再播下一个
func (m *AudioManager) PlaySequential(keys ...string) {
	if m == nil {
		return
	}
	go func() {
		for _, key := range keys {
			p, err := m.newPlayer(key)
			if err != nil {
				continue
			}
			p.Play()
			for p.IsPlaying() {
				time.Sleep(10 * time.Millisecond)
			}
		}
	}()
}

// Update 应每帧调用一次，清理已停止的播放器
func (m *AudioManager) Update() {
	if m == nil {
		return
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	alive := m.players[:0]
	for _, p := range m.players {
		if p.IsPlaying() {
			alive = append(alive, p)
		}
	}
	m.players = alive
}

func (m *AudioManager) newPlayer(key string) (*audio.Player, error) {
	data, ok := m.buffers[key]
	if !ok {
		return nil, fmt.Errorf("未找到音效 %s", key)
	}
	s, err := wav.DecodeWithSampleRate(m.ctx.SampleRate(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("解码音效 %s 失败: %w", key, err)
	}
	p, err := m.ctx.NewPlayer(s)
	if err != nil {
		return nil, fmt.Errorf("创建 Player 失败: %w", err)
	}
	return p, nil
}

// ------------------------------------------------------------
// 合成
// ------------------------------------------------------------

// synthesize 把若干音符合成为单声道 PCM，每个音符首尾各 5ms 淡入淡出
func synthesize(tones ...tone) []int16 {
	const amp = 0.28 * math.MaxInt16
	fade := SampleRate * 5 / 1000
	var pcm []int16
	for _, t := range tones {
		n := int(int64(t.dur) * SampleRate / int64(time.Second))
		phase := 0.0
		for i := 0; i < n; i++ {
			f := t.from + (t.to-t.from)*float64(i)/float64(n)
			phase += 2 * math.Pi * f / SampleRate
			env := 1.0
			if i < fade {
				env = float64(i) / float64(fade)
			} else if n-i < fade {
				env = float64(n-i) / float64(fade)
			}
			pcm = append(pcm, int16(amp*env*math.Sin(phase)))
		}
	}
	return pcm
}

// encodeWAV 单声道样本复制到左右声道，输出 16 位 PCM 的 RIFF/WAVE 字节
func encodeWAV(mono []int16, sampleRate int) []byte {
	const channels, bits = 2, 16
	dataLen := len(mono) * channels * bits / 8

	var b bytes.Buffer
	le := binary.LittleEndian
	b.WriteString("RIFF")
	binary.Write(&b, le, uint32(36+dataLen))
	b.WriteString("WAVE")

	b.WriteString("fmt ")
	binary.Write(&b, le, uint32(16))
	binary.Write(&b, le, uint16(1)) // PCM
	binary.Write(&b, le, uint16(channels))
	binary.Write(&b, le, uint32(sampleRate))
	binary.Write(&b, le, uint32(sampleRate*channels*bits/8))
	binary.Write(&b, le, uint16(channels*bits/8))
	binary.Write(&b, le, uint16(bits))

	b.WriteString("data")
	binary.Write(&b, le, uint32(dataLen))
	for _, s := range mono {
		binary.Write(&b, le, s)
		binary.Write(&b, le, s)
	}
	return b.Bytes()
}
