package assets

import "github.com/spaghettifunk/orrery/engine/renderer/metadata"

type Loader interface {
	// Load reads the file at path. params are loader specific and may be nil.
	Load(path string, params interface{}) (*metadata.Resource, error)
}
