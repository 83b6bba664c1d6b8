package metadata

import "github.com/google/uuid"

type ShaderStage int

const (
	ShaderStageVertex ShaderStage = iota
	ShaderStageFragment
)

func (s ShaderStage) String() string {
	if s == ShaderStageFragment {
		return "fragment"
	}
	return "vertex"
}

/**
 * @brief Configuration for a shader program: one source file per stage.
 */
type ShaderConfig struct {
	/** @brief The name of the shader to be created. */
	Name string
	/** @brief Stage file names, relative to the shader asset directory. */
	StageFiles map[ShaderStage]string
	/** @brief Stage sources, filled in by the shader system from StageFiles. */
	StageSources map[ShaderStage]string
}

/**
 * @brief Represents a shader on the frontend.
 */
type Shader struct {
	/** @brief The shader identifier */
	ID   uuid.UUID
	Name string
	/** @brief Incremented every time the program is rebuilt. */
	Generation uint32
	Config     *ShaderConfig
	/** @brief Backend specific data. */
	InternalData interface{}
}
