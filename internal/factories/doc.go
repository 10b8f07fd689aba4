/*
Package factories creates browser sessions from named configurations.

Driver types, factory types and options customizers are registered in a
Registry, usually from init functions. A configuration file names a
selected configuration and a map of driver configurations; each one picks
a driver type (or a factory type which takes over creation) and the
options to request.

# Creation chain

NewChain builds the standard Creator:

	ProxyWrappingDecorator -> ThirdPartyFactory -> RegistryFactory

ThirdPartyFactory hands off to a registered factory type when the
configuration names one. RegistryFactory otherwise creates the driver from
its registered driver type. The decorator then wraps the session in a proxy
when browser identification or quirks are enabled.

# Usage

	types := factories.DefaultTypesProvider()
	options, err := factories.NewConfigurationParser(types, logger, metrics).Load("drivers.yaml")
	if err != nil {
		return err
	}
	provider := factories.NewProvider(factories.NewChain(types, proxyFactory, logger, metrics), options)
	created, err := provider.GetDefaultWebDriver(ctx, nil)
*/
package factories
