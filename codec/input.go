// SPDX-License-Identifier: MIT
// Package: cliquecover/codec

package codec

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// ResolveInput returns the encoded graph named by arg: when arg is an
// existing path on fs, the first line of that file (whitespace trimmed);
// otherwise arg itself.
func ResolveInput(fs afero.Fs, arg string) (string, error) {
	ok, err := afero.Exists(fs, arg)
	if err != nil || !ok {
		return arg, nil
	}

	f, err := fs.Open(arg)
	if err != nil {
		return "", errors.Wrapf(ErrInputUnreadable, "%s: %v", arg, err)
	}
	defer f.Close()

	line, err := bufio.NewReader(f).ReadString('\n')
	if err != nil && err != io.EOF {
		return "", errors.Wrapf(ErrInputUnreadable, "%s: %v", arg, err)
	}

	return strings.TrimSpace(line), nil
}
