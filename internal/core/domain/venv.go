package domain

import (
	"strings"
)

// FrameworkName is the package name of the framework every venv is built around.
const FrameworkName = "torch"

const (
	// DefaultFrameworkIndexURL is the wheel index of framework builds.
	DefaultFrameworkIndexURL = "https://download.pytorch.org/whl"
	// DefaultPackageIndexURL is the general package index.
	DefaultPackageIndexURL = "https://pypi.org/simple"
)

// Triple is one Python x framework x accelerator combination of a generation.
type Triple struct {
	// Python is the major.minor key, PythonFull the interpreter version.
	Python     string
	PythonFull string
	Framework  string
	// Accelerator is a toolkit label or CPU.
	Accelerator string
}

// AcceleratorSuffix maps a toolkit label to its wheel local version suffix, "12.4" to "cu124".
func AcceleratorSuffix(accelerator string) string {
	if accelerator == CPU {
		return CPU
	}
	return "cu" + strings.ReplaceAll(accelerator, ".", "")
}

// VenvName returns the directory name of the triple's venv.
func (t Triple) VenvName() string {
	return "python" + t.Python + "-" + FrameworkName + t.Framework + "-" + AcceleratorSuffix(t.Accelerator)
}

// Candidates returns the unfiltered product of pythons, frameworks and accelerators of a generation.
// CPU is always part of the accelerator axis. Iteration is newest first on every axis.
func Candidates(m GenerationManifest) []Triple {
	accels := append(DescVersionKeys(m.Toolkits), CPU)
	frameworks := DescVersions(m.Frameworks)

	var out []Triple
	for _, p := range DescVersionKeys(m.Pythons) {
		for _, f := range frameworks {
			for _, a := range accels {
				out = append(out, Triple{
					Python:      p,
					PythonFull:  m.Pythons[p],
					Framework:   f,
					Accelerator: a,
				})
			}
		}
	}
	return out
}

// PackageIndex is the pair of indexes a venv resolves from.
// The framework index takes precedence over the default index.
type PackageIndex struct {
	FrameworkURL string
	DefaultURL   string
}

// IndexFor returns the indexes of a framework build. Pre-release frameworks use the nightly channel.
func IndexFor(base string, framework Version, accelerator string) PackageIndex {
	if base == "" {
		base = DefaultFrameworkIndexURL
	}
	base = strings.TrimSuffix(base, "/")
	if framework.IsPreRelease() {
		base += "/nightly"
	}
	return PackageIndex{
		FrameworkURL: base + "/" + AcceleratorSuffix(accelerator),
		DefaultURL:   DefaultPackageIndexURL,
	}
}

// legacyRuntimeWheels are the accelerator runtime wheels older frameworks do not bundle.
var legacyRuntimeWheels = []string{
	"nvidia-cublas",
	"nvidia-cuda-cupti",
	"nvidia-cuda-nvrtc",
	"nvidia-cuda-runtime",
	"nvidia-cudnn",
	"nvidia-cufft",
	"nvidia-curand",
	"nvidia-cusolver",
	"nvidia-cusparse",
	"nvidia-nccl",
	"nvidia-nvtx",
}

var bundledRuntimeSince = MustParseVersion("2.2.0")

// VenvPackages returns the resolver input of a venv: the framework and its companions,
// the generation's extra packages, and runtime wheels for frameworks that do not bundle them.
func VenvPackages(
	t Triple,
	framework Version,
	companions CompanionVersions,
	index PackageIndex,
	extras []string,
) []string {
	suffix := AcceleratorSuffix(t.Accelerator)

	var pkgs []string
	if framework.IsPreRelease() {
		py := "cp" + strings.ReplaceAll(t.Python, ".", "")
		wheel := func(name, version string) string {
			return name + " @ " + index.FrameworkURL + "/" + name + "-" + version + "%2B" + suffix +
				"-" + py + "-" + py + "-linux_x86_64.whl"
		}
		pkgs = append(pkgs,
			wheel(FrameworkName, framework.String()),
			wheel("torchaudio", companions.Audio),
			wheel("torchvision", companions.Vision),
		)
	} else {
		pkgs = append(pkgs,
			FrameworkName+"=="+framework.String()+"+"+suffix,
			"torchaudio=="+companions.Audio+"+"+suffix,
			"torchvision=="+companions.Vision+"+"+suffix,
		)
	}
	pkgs = append(pkgs, extras...)

	if t.Accelerator != CPU && framework.Less(bundledRuntimeSince) {
		major := suffix[:min(len(suffix), 4)]
		for _, w := range legacyRuntimeWheels {
			pkgs = append(pkgs, w+"-"+major)
		}
		if major == "cu12" {
			pkgs = append(pkgs, "nvidia-nvjitlink-"+major)
		}
	}
	return pkgs
}

// LinkCacheName returns the shared-library cache file name of a toolkit, runtime library and python.
func LinkCacheName(toolkit, runtimeLib, python string) string {
	return "accel" + toolkit + "-runtimelib" + runtimeLib + "-python" + python
}
