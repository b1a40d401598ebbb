package azure

import (
	"context"
	"fmt"

	"github.com/Azure/azure-sdk-for-go/sdk/azcore/to"
	"github.com/Azure/azure-sdk-for-go/sdk/resourcemanager/containerinstance/armcontainerinstance/v2"
)

// workspaceVolumeName links the Azure Files share volume to the agent's
// mount path.
const workspaceVolumeName = "workspace"

// DeployContainerGroup creates or updates the container group and waits for
// the deployment to finish. The group runs a single container with a public
// address and the file share mounted as its workspace.
func (c *RealClient) DeployContainerGroup(ctx context.Context, resourceGroup string, spec ContainerGroupSpec) error {
	group := armcontainerinstance.ContainerGroup{
		Location: to.Ptr(spec.Location),
		Properties: &armcontainerinstance.ContainerGroupPropertiesProperties{
			OSType:        to.Ptr(armcontainerinstance.OperatingSystemTypesLinux),
			RestartPolicy: to.Ptr(armcontainerinstance.ContainerGroupRestartPolicyAlways),
			Containers: []*armcontainerinstance.Container{
				{
					Name: to.Ptr(spec.Name),
					Properties: &armcontainerinstance.ContainerProperties{
						Image: to.Ptr(spec.Image),
						Ports: []*armcontainerinstance.ContainerPort{
							{Port: to.Ptr(spec.Port)},
						},
						Resources: &armcontainerinstance.ResourceRequirements{
							Requests: &armcontainerinstance.ResourceRequests{
								CPU:        to.Ptr(spec.CPU),
								MemoryInGB: to.Ptr(spec.MemoryGB),
							},
						},
						VolumeMounts: []*armcontainerinstance.VolumeMount{
							{
								Name:      to.Ptr(workspaceVolumeName),
								MountPath: to.Ptr(spec.MountPath),
							},
						},
					},
				},
			},
			ImageRegistryCredentials: []*armcontainerinstance.ImageRegistryCredential{
				{
					Server:   to.Ptr(spec.RegistryServer),
					Username: to.Ptr(spec.RegistryUsername),
					Password: to.Ptr(spec.RegistryPassword),
				},
			},
			IPAddress: &armcontainerinstance.IPAddress{
				Type: to.Ptr(armcontainerinstance.ContainerGroupIPAddressTypePublic),
				Ports: []*armcontainerinstance.Port{
					{
						Port:     to.Ptr(spec.Port),
						Protocol: to.Ptr(armcontainerinstance.ContainerGroupNetworkProtocolTCP),
					},
				},
			},
			Volumes: []*armcontainerinstance.Volume{
				{
					Name: to.Ptr(workspaceVolumeName),
					AzureFile: &armcontainerinstance.AzureFileVolume{
						ShareName:          to.Ptr(spec.ShareName),
						StorageAccountName: to.Ptr(spec.StorageAccount),
						StorageAccountKey:  to.Ptr(spec.StorageKey),
					},
				},
			},
		},
	}

	poller, err := c.containerGroups.BeginCreateOrUpdate(ctx, resourceGroup, spec.Name, group, nil)
	if err != nil {
		return fmt.Errorf("deploying container group %s: %w", spec.Name, err)
	}
	if _, err := poller.PollUntilDone(ctx, nil); err != nil {
		return fmt.Errorf("waiting for container group %s: %w", spec.Name, err)
	}
	return nil
}

// ContainerGroupAddress returns the public IP of the group. It returns an
// empty string while no address has been assigned.
func (c *RealClient) ContainerGroupAddress(ctx context.Context, resourceGroup, name string) (string, error) {
	resp, err := c.containerGroups.Get(ctx, resourceGroup, name, nil)
	if err != nil {
		return "", fmt.Errorf("reading container group %s: %w", name, err)
	}
	if resp.Properties == nil || resp.Properties.IPAddress == nil || resp.Properties.IPAddress.IP == nil {
		return "", nil
	}
	return *resp.Properties.IPAddress.IP, nil
}
