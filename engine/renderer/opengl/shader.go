package opengl

import (
	"fmt"
	"strings"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/spaghettifunk/orrery/engine/core"
	"github.com/spaghettifunk/orrery/engine/math"
	"github.com/spaghettifunk/orrery/engine/renderer/metadata"
)

type glProgram struct {
	program  uint32
	uniforms map[string]int32
}

var glStages = map[metadata.ShaderStage]uint32{
	metadata.ShaderStageVertex:   gl.VERTEX_SHADER,
	metadata.ShaderStageFragment: gl.FRAGMENT_SHADER,
}

// ShaderCreate compiles and links config.StageSources. The shader is left
// untouched on failure, so a previously linked program stays usable.
func (r *OpenGLRenderer) ShaderCreate(shader *metadata.Shader, config *metadata.ShaderConfig) error {
	if len(config.StageSources) == 0 {
		return fmt.Errorf("%w: shader %s has no stages", core.ErrShaderCompile, config.Name)
	}

	program := gl.CreateProgram()
	var compiled []uint32
	defer func() {
		for _, s := range compiled {
			gl.DeleteShader(s)
		}
	}()

	for stage, source := range config.StageSources {
		s, err := compileShader(source, glStages[stage])
		if err != nil {
			gl.DeleteProgram(program)
			return fmt.Errorf("%w: %s %s stage: %s", core.ErrShaderCompile, config.Name, stage, err)
		}
		gl.AttachShader(program, s)
		compiled = append(compiled, s)
	}
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))
		gl.DeleteProgram(program)
		return fmt.Errorf("%w: %s: %s", core.ErrShaderLink, config.Name, strings.TrimRight(log, "\x00"))
	}

	r.ShaderDestroy(shader)
	shader.InternalData = &glProgram{
		program:  program,
		uniforms: make(map[string]int32),
	}
	return nil
}

func compileShader(source string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)

	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)
		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s", strings.TrimRight(log, "\x00"))
	}
	return shader, nil
}

func (r *OpenGLRenderer) ShaderDestroy(shader *metadata.Shader) {
	p, ok := shader.InternalData.(*glProgram)
	if !ok {
		return
	}
	gl.DeleteProgram(p.program)
	shader.InternalData = nil
}

func (r *OpenGLRenderer) ShaderUse(shader *metadata.Shader) error {
	p, ok := shader.InternalData.(*glProgram)
	if !ok {
		return fmt.Errorf("shader %s is not linked", shader.Name)
	}
	gl.UseProgram(p.program)
	return nil
}

func (p *glProgram) location(name string) int32 {
	if loc, ok := p.uniforms[name]; ok {
		return loc
	}
	loc := gl.GetUniformLocation(p.program, gl.Str(name+"\x00"))
	p.uniforms[name] = loc
	return loc
}

// SetUniform sets a uniform on the program currently in use.
func (r *OpenGLRenderer) SetUniform(shader *metadata.Shader, name string, value interface{}) error {
	p, ok := shader.InternalData.(*glProgram)
	if !ok {
		return fmt.Errorf("shader %s is not linked", shader.Name)
	}
	loc := p.location(name)
	if loc < 0 {
		return nil
	}

	switch v := value.(type) {
	case math.Mat4:
		gl.UniformMatrix4fv(loc, 1, false, &v.Data[0])
	case [9]float32:
		gl.UniformMatrix3fv(loc, 1, false, &v[0])
	case math.Vec4:
		gl.Uniform4f(loc, v.X, v.Y, v.Z, v.W)
	case math.Vec3:
		gl.Uniform3f(loc, v.X, v.Y, v.Z)
	case math.Vec2:
		gl.Uniform2f(loc, v.X, v.Y)
	case float32:
		gl.Uniform1f(loc, v)
	case int32:
		gl.Uniform1i(loc, v)
	case bool:
		var i int32
		if v {
			i = 1
		}
		gl.Uniform1i(loc, i)
	default:
		return fmt.Errorf("shader %s: unsupported uniform type %T for %s", shader.Name, value, name)
	}
	return nil
}
