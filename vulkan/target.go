// Package vulkan implements the replay target boundary on top of a live
// Vulkan device and a vam allocator.
package vulkan

import (
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/vkngwrapper/arsenal/memutils"
	"github.com/vkngwrapper/arsenal/replay/replay"
	"github.com/vkngwrapper/arsenal/vam"
	"github.com/vkngwrapper/core/v2"
	"github.com/vkngwrapper/core/v2/common"
	"github.com/vkngwrapper/core/v2/core1_0"
	"github.com/vkngwrapper/extensions/v2/ext_debug_utils"
	"github.com/vkngwrapper/extensions/v2/khr_portability_enumeration"
	"github.com/vkngwrapper/extensions/v2/khr_portability_subset"
	"golang.org/x/exp/slog"
)

// Replaying allocator calls without the rest of the recorded frame trips a
// few validation messages that say nothing about the replay itself, so the
// debug messenger drops them.
var ignoredMessageFragments = []string{
	"Mapping an image with layout",
	"vkGetBufferMemoryRequirements() has not been called",
	"vkGetImageMemoryRequirements() has not been called",
}

// TargetOptions adjusts how the live Vulkan objects are created.
type TargetOptions struct {
	// ApplicationName is reported to the Vulkan driver.
	ApplicationName string
	// PhysicalDeviceIndex selects which physical device to replay against,
	// in instance enumeration order.
	PhysicalDeviceIndex int
}

// Target drives a real Vulkan device. It owns the instance, device, debug
// messenger, and allocator it creates, and destroys all of them in Destroy.
type Target struct {
	logger *slog.Logger

	instance       core1_0.Instance
	debugMessenger ext_debug_utils.DebugUtilsMessenger
	physicalDevice core1_0.PhysicalDevice
	device         core1_0.Device
	allocator      *vam.Allocator

	lostAllocationNoted bool
}

var _ replay.Target = (*Target)(nil)

// NewTarget brings up a Vulkan instance, selects a physical device with a
// graphics queue, creates a logical device, and wraps it all in a vam
// allocator.
func NewTarget(logger *slog.Logger, options TargetOptions) (*Target, error) {
	t := &Target{logger: logger}

	debugCallback := func(msgType ext_debug_utils.DebugUtilsMessageTypeFlags, severity ext_debug_utils.DebugUtilsMessageSeverityFlags, data *ext_debug_utils.DebugUtilsMessengerCallbackData) bool {
		for _, fragment := range ignoredMessageFragments {
			if strings.Contains(data.Message, fragment) {
				return false
			}
		}
		logger.Warn("validation message",
			slog.String("severity", severity.String()),
			slog.String("type", msgType.String()),
			slog.String("message", data.Message))
		return false
	}

	loader, err := core.CreateSystemLoader()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load Vulkan")
	}

	instanceExtensions, _, err := loader.AvailableExtensions()
	if err != nil {
		return nil, errors.Wrap(err, "failed to enumerate instance extensions")
	}

	instanceExtensionNames := []string{ext_debug_utils.ExtensionName}
	var flags core1_0.InstanceCreateFlags
	if _, ok := instanceExtensions[khr_portability_enumeration.ExtensionName]; ok {
		instanceExtensionNames = append(instanceExtensionNames, khr_portability_enumeration.ExtensionName)
		flags |= khr_portability_enumeration.InstanceCreateEnumeratePortability
	}

	appName := options.ApplicationName
	if appName == "" {
		appName = "vmareplay"
	}

	t.instance, _, err = loader.CreateInstance(nil, core1_0.InstanceCreateInfo{
		ApplicationName:       appName,
		ApplicationVersion:    common.CreateVersion(1, 0, 0),
		EngineName:            "vmareplay",
		EngineVersion:         common.CreateVersion(1, 0, 0),
		APIVersion:            common.Vulkan1_0,
		EnabledExtensionNames: instanceExtensionNames,
		Flags:                 flags,
		NextOptions: common.NextOptions{Next: ext_debug_utils.DebugUtilsMessengerCreateInfo{
			MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
			MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
			UserCallback:    debugCallback,
		}},
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create Vulkan instance")
	}

	debugLoader := ext_debug_utils.CreateExtensionFromInstance(t.instance)
	t.debugMessenger, _, err = debugLoader.CreateDebugUtilsMessenger(t.instance, nil, ext_debug_utils.DebugUtilsMessengerCreateInfo{
		MessageSeverity: ext_debug_utils.SeverityError | ext_debug_utils.SeverityWarning,
		MessageType:     ext_debug_utils.TypeGeneral | ext_debug_utils.TypeValidation | ext_debug_utils.TypePerformance,
		UserCallback:    debugCallback,
	})
	if err != nil {
		t.instance.Destroy(nil)
		return nil, errors.Wrap(err, "failed to create debug messenger")
	}

	gpus, _, err := t.instance.EnumeratePhysicalDevices()
	if err != nil {
		t.teardownInstance()
		return nil, errors.Wrap(err, "failed to enumerate physical devices")
	}
	if options.PhysicalDeviceIndex < 0 || options.PhysicalDeviceIndex >= len(gpus) {
		t.teardownInstance()
		return nil, errors.Newf("physical device index %d out of range, %d devices available",
			options.PhysicalDeviceIndex, len(gpus))
	}
	t.physicalDevice = gpus[options.PhysicalDeviceIndex]

	properties, err := t.physicalDevice.Properties()
	if err == nil {
		logger.Info("replaying on device",
			slog.String("deviceName", properties.DriverName),
			slog.Int("deviceIndex", options.PhysicalDeviceIndex))
	}

	graphicsFamily := -1
	for queueIndex, queueFamily := range t.physicalDevice.QueueFamilyProperties() {
		if queueFamily.QueueFlags&core1_0.QueueGraphics != 0 {
			graphicsFamily = queueIndex
			break
		}
	}
	if graphicsFamily < 0 {
		t.teardownInstance()
		return nil, errors.New("selected physical device has no graphics queue family")
	}

	var deviceExtensionNames []string
	deviceExtensions, _, err := t.physicalDevice.EnumerateDeviceExtensionProperties()
	if err != nil {
		t.teardownInstance()
		return nil, errors.Wrap(err, "failed to enumerate device extensions")
	}
	if _, ok := deviceExtensions[khr_portability_subset.ExtensionName]; ok {
		deviceExtensionNames = append(deviceExtensionNames, khr_portability_subset.ExtensionName)
	}

	t.device, _, err = t.physicalDevice.CreateDevice(nil, core1_0.DeviceCreateInfo{
		QueueCreateInfos: []core1_0.DeviceQueueCreateInfo{
			{
				QueueFamilyIndex: graphicsFamily,
				QueuePriorities:  []float32{0.0},
			},
		},
		EnabledExtensionNames: deviceExtensionNames,
	})
	if err != nil {
		t.teardownInstance()
		return nil, errors.Wrap(err, "failed to create logical device")
	}

	t.allocator, err = vam.New(logger, t.instance, t.physicalDevice, t.device, vam.CreateOptions{})
	if err != nil {
		t.device.Destroy(nil)
		t.teardownInstance()
		return nil, errors.Wrap(err, "failed to create allocator")
	}

	return t, nil
}

func (t *Target) teardownInstance() {
	t.debugMessenger.Destroy(nil)
	t.instance.Destroy(nil)
}

// SetCurrentFrameIndex is accepted for recording compatibility. The frame
// index only mattered for lost allocations, which the allocator no longer
// supports.
func (t *Target) SetCurrentFrameIndex(frameIndex uint32) {}

func (t *Target) CreatePool(params replay.PoolParams) (replay.TargetPool, error) {
	pool, _, err := t.allocator.CreatePool(vam.PoolCreateInfo{
		MemoryTypeIndex: int(params.MemoryTypeIndex),
		Flags:           poolCreateFlags(params.Flags),
		BlockSize:       int(params.BlockSize),
		MinBlockCount:   int(params.MinBlockCount),
		MaxBlockCount:   int(params.MaxBlockCount),
	})
	if err != nil {
		return nil, err
	}
	return &targetPool{pool: pool}, nil
}

func (t *Target) CreateBuffer(buffer replay.BufferParams, alloc replay.AllocationParams) (replay.TargetAllocation, error) {
	target := &targetAllocation{kind: backingBuffer}

	liveBuffer, _, err := t.allocator.CreateBuffer(core1_0.BufferCreateInfo{
		Flags:       core1_0.BufferCreateFlags(buffer.Flags),
		Size:        int(buffer.Size),
		Usage:       core1_0.BufferUsageFlags(buffer.Usage),
		SharingMode: core1_0.SharingMode(buffer.SharingMode),
	}, allocationCreateInfo(alloc), &target.allocation)
	if err != nil {
		return nil, err
	}

	target.buffer = liveBuffer
	applyUserData(&target.allocation, alloc.UserData)
	return target, nil
}

func (t *Target) CreateImage(image replay.ImageParams, alloc replay.AllocationParams) (replay.TargetAllocation, error) {
	target := &targetAllocation{kind: backingImage}

	liveImage, _, err := t.allocator.CreateImage(core1_0.ImageCreateInfo{
		Flags:     core1_0.ImageCreateFlags(image.Flags),
		ImageType: core1_0.ImageType(image.ImageType),
		Format:    core1_0.Format(image.Format),
		Extent: core1_0.Extent3D{
			Width:  int(image.Width),
			Height: int(image.Height),
			Depth:  int(image.Depth),
		},
		MipLevels:     int(image.MipLevels),
		ArrayLayers:   int(image.ArrayLayers),
		Samples:       core1_0.SampleCountFlags(image.Samples),
		Tiling:        core1_0.ImageTiling(image.Tiling),
		Usage:         core1_0.ImageUsageFlags(image.Usage),
		SharingMode:   core1_0.SharingMode(image.SharingMode),
		InitialLayout: core1_0.ImageLayout(image.InitialLayout),
	}, allocationCreateInfo(alloc), &target.allocation)
	if err != nil {
		return nil, err
	}

	target.image = liveImage
	applyUserData(&target.allocation, alloc.UserData)
	return target, nil
}

func (t *Target) AllocateMemory(requirements replay.MemoryRequirements, alloc replay.AllocationParams) (replay.TargetAllocation, error) {
	// Recorded requirements came straight out of another driver, so the
	// alignment is validated before it reaches the allocator.
	if requirements.Alignment != 0 {
		if err := memutils.CheckPow2(int(requirements.Alignment), "recorded allocation alignment"); err != nil {
			return nil, err
		}
	}

	target := &targetAllocation{kind: backingMemory}

	_, err := t.allocator.AllocateMemory(&core1_0.MemoryRequirements{
		Size:           int(requirements.Size),
		Alignment:      int(requirements.Alignment),
		MemoryTypeBits: requirements.MemoryTypeBits,
	}, allocationCreateInfo(alloc), &target.allocation)
	if err != nil {
		return nil, err
	}

	applyUserData(&target.allocation, alloc.UserData)
	return target, nil
}

func (t *Target) CreateLostAllocation() (replay.TargetAllocation, error) {
	if !t.lostAllocationNoted {
		t.lostAllocationNoted = true
		t.logger.Warn("the allocator no longer supports lost allocations, replaying them as inert allocations")
	}
	return &targetAllocation{kind: backingNone}, nil
}

func (t *Target) Destroy() error {
	if err := t.allocator.Destroy(); err != nil {
		return errors.Wrap(err, "failed to destroy allocator")
	}

	if _, err := t.device.WaitIdle(); err != nil {
		return errors.Wrap(err, "failed to wait for device idle")
	}
	t.device.Destroy(nil)
	t.teardownInstance()
	return nil
}
