// buildinfoprint is imported for the side effect of printing the build stamp
// to os.Stderr.
package buildinfoprint

import "github.com/arog-bioinfo/covmeta/buildinfo"

func init() {
	buildinfo.PrintToStderr()
}
