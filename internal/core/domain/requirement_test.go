package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/monobase/internal/core/domain"
)

func TestParseRequirement(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want domain.Requirement
	}{
		{"opencv-python==4.10.0.84", domain.Pin("opencv-python", "4.10.0.84")},
		{"torch==2.4.1+cu124", domain.Pin("torch", "2.4.1+cu124")},
		{"  numpy == 1.26.4  ", domain.Pin("numpy", "1.26.4")},
		{"wheel==0.45.1 ; python_version >= '3.8'", domain.Pin("wheel", "0.45.1")},
		{
			"cog @ https://github.com/replicate/cog/archive/refs/heads/main.zip",
			domain.Direct("cog", "https://github.com/replicate/cog/archive/refs/heads/main.zip"),
		},
		{
			"./torch-2.6.0.dev20240918-cp312-cp312-linux_x86_64.whl",
			domain.Requirement{
				Kind: domain.RequirementLocal,
				Name: "./torch-2.6.0.dev20240918-cp312-cp312-linux_x86_64.whl",
				Path: "./torch-2.6.0.dev20240918-cp312-cp312-linux_x86_64.whl",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			got, err := domain.ParseRequirement(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRequirement_Unpinned(t *testing.T) {
	t.Parallel()

	for _, line := range []string{
		"numpy",
		"numpy>=1.26",
		"numpy~=1.26.0",
		"numpy<2",
		"numpy!=1.25",
		"numpy==1.*",
		"numpy==1.26,<2",
		"numpy===1.26",
		"==1.0",
		"",
		"pkg @ ",
	} {
		_, err := domain.ParseRequirement(line)
		require.ErrorIs(t, err, domain.ErrUnpinnedPackage, line)
	}
}

func TestParseRequirements(t *testing.T) {
	t.Parallel()

	text := `# This file was autogenerated by uv
--index-url https://pypi.org/simple
-e file:///work/pkg

filelock==3.16.1
    # via torch
jinja2==3.1.4 # via torch
Torch_Audio==2.4.1
`
	reqs, err := domain.ParseRequirements(text)
	require.NoError(t, err)
	require.Len(t, reqs, 3)
	assert.Equal(t, domain.Pin("filelock", "3.16.1"), reqs[0])
	assert.Equal(t, domain.Pin("jinja2", "3.1.4"), reqs[1])
	assert.Equal(t, "torch-audio", reqs[2].Key())

	_, err = domain.ParseRequirements("numpy>=1\n")
	require.ErrorIs(t, err, domain.ErrUnpinnedPackage)
}

func TestRequirement_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "a==1", domain.Pin("a", "1").String())
	assert.Equal(t, "a @ https://x/a.whl", domain.Direct("a", "https://x/a.whl").String())
	assert.Equal(t, "/w/a.whl", domain.Requirement{Kind: domain.RequirementLocal, Path: "/w/a.whl"}.String())
	assert.Equal(t, "pin", domain.RequirementPin.String())
	assert.Equal(t, "direct", domain.RequirementDirect.String())
	assert.Equal(t, "local", domain.RequirementLocal.String())
}

func TestRequirement_Key(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "opencv-python", domain.Pin("OpenCV_Python", "1").Key())
	assert.Equal(t, "uvicorn", domain.Pin("uvicorn[standard]", "1").Key())
	assert.Equal(t, "zope-interface", domain.Pin("zope.interface", "1").Key())
}

func TestRequirement_HasRemoteSource(t *testing.T) {
	t.Parallel()

	tests := []struct {
		line string
		want bool
	}{
		{"cog @ https://example.com/cog.zip", true},
		{"pget @ git+https://github.com/replicate/pget@v0.8.2", true},
		{"numpy @ >=1.26", false},
		{"numpy@latest", false},
		{"cog @ file:///src/cog", false},
		{"numpy==1.26.4", false},
		{"./vendored/pkg", false},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			t.Parallel()

			req, err := domain.ParseRequirement(tt.line)
			require.NoError(t, err)
			assert.Equal(t, tt.want, req.HasRemoteSource())
		})
	}
}
