package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout(800, 400, 20)

	assert.Equal(t, 380.0, l.GroundY)
	assert.Equal(t, SpawnPoint{X: 50, Y: 0}, l.PlayerSpawn)
	assert.Equal(t, Rect{X: 750, Y: 340, W: 20, H: 40}, l.Door)
	require.Len(t, l.Spikes, 2)
	assert.Equal(t, Rect{X: 150, Y: 370, W: 20, H: 10}, l.Spikes[0])
	assert.Equal(t, 350.0, l.Spikes[1].X)
	assert.Equal(t, 200.0, l.SlimeX(0))
	assert.Equal(t, 440.0, l.SlimeX(2))
}

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="40" height="20" tilewidth="20" tileheight="20" infinite="0">
 <properties>
  <property name="slimeStartX" type="int" value="200"/>
  <property name="slimeSpacing" type="int" value="120"/>
 </properties>
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="50" y="0"/>
 </objectgroup>
 <objectgroup id="2" name="Spikes">
  <object id="2" x="350" y="370" width="20" height="10"/>
  <object id="3" x="150" y="370" width="20" height="10"/>
 </objectgroup>
 <objectgroup id="3" name="Door">
  <object id="4" x="750" y="340" width="20" height="40"/>
 </objectgroup>
</map>
`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{"levels/test.tmx": {Data: []byte(testTMX)}}

	l, err := LoadLayout(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", l.Name)
	assert.Equal(t, 800.0, l.Width)
	assert.Equal(t, 400.0, l.Height)
	assert.Equal(t, 380.0, l.GroundY)
	assert.Equal(t, SpawnPoint{X: 50, Y: 0}, l.PlayerSpawn)
	assert.Equal(t, Rect{X: 750, Y: 340, W: 20, H: 40}, l.Door)
	require.Len(t, l.Spikes, 2)
	assert.Equal(t, 150.0, l.Spikes[0].X)
	assert.Equal(t, 200.0, l.SlimeStartX)
	assert.Equal(t, 120.0, l.SlimeSpacing)
}

func TestLoadLayoutWithoutDoor(t *testing.T) {
	tmx := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="10" height="10" tilewidth="20" tileheight="20"></map>`
	fsys := fstest.MapFS{"x.tmx": {Data: []byte(tmx)}}

	_, err := LoadLayout(fsys, "x.tmx")
	assert.Error(t, err)
}

func TestLoadLayoutWithoutProperties(t *testing.T) {
	tmx := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="40" height="20" tilewidth="20" tileheight="20">
 <objectgroup id="1" name="Door">
  <object id="1" x="750" y="340" width="20" height="40"/>
 </objectgroup>
</map>`
	fsys := fstest.MapFS{"plain.tmx": {Data: []byte(tmx)}}

	l, err := LoadLayout(fsys, "plain.tmx")
	require.NoError(t, err)
	assert.Equal(t, 200.0, l.SlimeStartX)
	assert.Equal(t, 120.0, l.SlimeSpacing)
	assert.Equal(t, 380.0, l.GroundY)
}

func TestLoadLayoutPartialProperties(t *testing.T) {
	tmx := `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="40" height="20" tilewidth="20" tileheight="20">
 <properties>
  <property name="slimeStartX" type="int" value="300"/>
 </properties>
 <objectgroup id="1" name="Door">
  <object id="1" x="750" y="340" width="20" height="40"/>
 </objectgroup>
</map>`
	fsys := fstest.MapFS{"partial.tmx": {Data: []byte(tmx)}}

	l, err := LoadLayout(fsys, "partial.tmx")
	require.NoError(t, err)
	assert.Equal(t, 300.0, l.SlimeStartX)
	assert.Equal(t, 120.0, l.SlimeSpacing)
}

func TestLoadLayoutRejectsBadMaps(t *testing.T) {
	tests := []struct {
		name string
		tmx  string
	}{
		{
			name: "zero slime spacing",
			tmx: `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="40" height="20" tilewidth="20" tileheight="20">
 <properties>
  <property name="slimeSpacing" type="int" value="0"/>
 </properties>
 <objectgroup id="1" name="Door">
  <object id="1" x="750" y="340" width="20" height="40"/>
 </objectgroup>
</map>`,
		},
		{
			name: "door past the map edge",
			tmx: `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" width="10" height="20" tilewidth="20" tileheight="20">
 <objectgroup id="1" name="Door">
  <object id="1" x="750" y="340" width="20" height="40"/>
 </objectgroup>
</map>`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := fstest.MapFS{"bad.tmx": {Data: []byte(tt.tmx)}}
			_, err := LoadLayout(fsys, "bad.tmx")
			assert.Error(t, err)
		})
	}
}
