package graphics

import (
	"errors"

	"cubefield/internal/scene"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Material is a raylib material running the Phong shader. Uniform locations are looked
// up once at creation; values are set once per frame before the cubes are drawn.
type Material struct {
	mtl      rl.Material
	phong    scene.PhongMaterial
	released bool

	locViewPos     int32
	locLightDir    int32
	locLightColor  int32
	locAmbient     int32
	locShininess   int32
	locFlatShading int32
}

func newMaterial(m scene.PhongMaterial) (*Material, error) {
	shader := rl.LoadShaderFromMemory(phongVS, phongFS)
	if !rl.IsShaderValid(shader) {
		return nil, errors.New("graphics: phong shader failed to compile")
	}
	mtl := rl.LoadMaterialDefault()
	mtl.Shader = shader
	if albedo := mtl.GetMap(rl.MapAlbedo); albedo != nil {
		r, g, b := m.Color.RGB()
		albedo.Color = rl.NewColor(uint8(r*255), uint8(g*255), uint8(b*255), 255)
	}
	return &Material{
		mtl:            mtl,
		phong:          m,
		locViewPos:     rl.GetShaderLocation(shader, "viewPos"),
		locLightDir:    rl.GetShaderLocation(shader, "lightDir"),
		locLightColor:  rl.GetShaderLocation(shader, "lightColor"),
		locAmbient:     rl.GetShaderLocation(shader, "ambient"),
		locShininess:   rl.GetShaderLocation(shader, "shininess"),
		locFlatShading: rl.GetShaderLocation(shader, "flatShading"),
	}, nil
}

// Release unloads the shader and the material.
func (m *Material) Release() {
	if m.released {
		return
	}
	m.released = true
	rl.UnloadMaterial(m.mtl)
}

// setUniforms loads the scene's lights and the camera position into the shader
// (cgo-safe: values are copied into local slices).
func (m *Material) setUniforms(s *scene.Scene, cam *scene.Camera) {
	shader := m.mtl.Shader
	viewPos := []float32{cam.Position.X(), cam.Position.Y(), cam.Position.Z()}
	dir := s.Directional.Direction()
	lightDir := []float32{dir.X(), dir.Y(), dir.Z()}
	lc := s.Directional.Color.Scaled(s.Directional.Intensity)
	ac := s.Ambient.Color.Scaled(s.Ambient.Intensity)
	flat := float32(0)
	if m.phong.FlatShading {
		flat = 1
	}
	if m.locViewPos >= 0 {
		rl.SetShaderValueV(shader, m.locViewPos, viewPos, rl.ShaderUniformVec3, 1)
	}
	if m.locLightDir >= 0 {
		rl.SetShaderValueV(shader, m.locLightDir, lightDir, rl.ShaderUniformVec3, 1)
	}
	if m.locLightColor >= 0 {
		rl.SetShaderValueV(shader, m.locLightColor, lc[:], rl.ShaderUniformVec3, 1)
	}
	if m.locAmbient >= 0 {
		rl.SetShaderValueV(shader, m.locAmbient, ac[:], rl.ShaderUniformVec3, 1)
	}
	if m.locShininess >= 0 {
		rl.SetShaderValue(shader, m.locShininess, []float32{m.phong.Shininess}, rl.ShaderUniformFloat)
	}
	if m.locFlatShading >= 0 {
		rl.SetShaderValue(shader, m.locFlatShading, []float32{flat}, rl.ShaderUniformFloat)
	}
}

// Phong lighting with one ambient and one directional light. With flatShading set the
// normal comes from screen-space derivatives of the world position, so every face of
// the cube gets one uniform shade.
const (
	phongVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	phongFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec3 ambient;
uniform float shininess;
uniform float flatShading;
out vec4 finalColor;
void main() {
  vec3 N = normalize(fragNormal);
  if (flatShading > 0.5) {
    N = normalize(cross(dFdx(fragPosition), dFdy(fragPosition)));
  }
  vec3 L = normalize(lightDir);
  vec3 V = normalize(viewPos - fragPosition);
  float NdotL = max(dot(N, L), 0.0);
  vec3 diffuse = colDiffuse.rgb * lightColor * NdotL;
  vec3 amb = colDiffuse.rgb * ambient;
  vec3 H = normalize(L + V);
  float spec = NdotL > 0.0 ? pow(max(dot(N, H), 0.0), shininess) : 0.0;
  vec3 specular = lightColor * spec * 0.067;
  finalColor = vec4(clamp(amb + diffuse + specular, 0.0, 1.0), colDiffuse.a);
}
`
)
