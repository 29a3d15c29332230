package redirect

// defaultEntries is the compiled-in mapping from legacy storefront URLs to
// their canonical destinations. Source paths are the literal path+query
// strings the old site emitted, percent-encoding included.
//
// The list is ordered; a source path listed twice resolves to the later
// destination.
var defaultEntries = []Entry{
	{
		SourcePath:     "/commander/DMC/cle/null/Cl%C3%A9-Dmc-kaba?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/DMC/cle/null/Cl%C3%A9-Dmc-kaba?mode=numero",
	},
	{
		SourcePath:     "/commander/VACHETTE/cle/12/Cl%C3%A9-Vachette-Radial-NT?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/VACHETTE/cle/12/Cl%C3%A9-Vachette-Radial-NT?mode=numero",
	},
	{
		SourcePath:     "/commander/BRICARD/cle/31/Cl%C3%A9-Bricard-Chifral-S2?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/BRICARD/cle/31/Cl%C3%A9-Bricard-Chifral-S2?mode=numero",
	},
	{
		SourcePath:     "/commander/FICHET/cle/48/Cl%C3%A9-Fichet-787?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/FICHET/cle/48/Cl%C3%A9-Fichet-787?mode=numero",
	},
	{
		SourcePath:     "/commander/HERACLES/cle/57/Cl%C3%A9-H%C3%A9racl%C3%A8s-Salome?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/HERACLES/cle/57/Cl%C3%A9-H%C3%A9racl%C3%A8s-Salome?mode=numero",
	},
	{
		SourcePath:     "/commander/PICARD/cle/63/Cl%C3%A9-Picard-Vigie?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/PICARD/cle/63/Cl%C3%A9-Picard-Vigie?mode=numero",
	},
	{
		SourcePath:     "/commander/DOM/cle/74/Cl%C3%A9-Dom-RS8?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/DOM/cle/74/Cl%C3%A9-Dom-RS8?mode=numero",
	},
	{
		SourcePath:     "/commander/JPM/cle/82/Cl%C3%A9-JPM-Keso?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/JPM/cle/82/Cl%C3%A9-JPM-Keso?mode=numero",
	},
	{
		SourcePath:     "/commander/LAPERCHE/cle/90/Cl%C3%A9-Laperche-Diam?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/LAPERCHE/cle/90/Cl%C3%A9-Laperche-Diam?mode=numero",
	},
	{
		SourcePath:     "/commander/MOTTURA/cle/101/Cl%C3%A9-Mottura-Champion?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/MOTTURA/cle/101/Cl%C3%A9-Mottura-Champion?mode=numero",
	},
	{
		SourcePath:     "/commander/POLLUX/cle/112/Cl%C3%A9-Pollux-7?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/POLLUX/cle/112/Cl%C3%A9-Pollux-7?mode=numero",
	},
	{
		SourcePath:     "/commander/VAK/cle/125/Cl%C3%A9-Vak-Mobile?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/VAK/cle/125/Cl%C3%A9-Vak-Mobile?mode=numero",
	},
	{
		SourcePath:     "/trouver.php?marque=ABUS",
		DestinationURL: "https://www.cleservice.com/abus_1_reproduction_cle.html",
	},
	{
		SourcePath:     "/trouver.php?marque=VACHETTE",
		DestinationURL: "https://www.cleservice.com/vachette_1_reproduction_cle.html",
	},
	// Legacy duplicate kept from the old map; the second destination wins.
	{
		SourcePath:     "/commander/KABA/cle/134/Cl%C3%A9-Kaba-20?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/KABA/cle/134/Cl%C3%A9-Kaba-20?mode=numero",
	},
	{
		SourcePath:     "/commander/KABA/cle/134/Cl%C3%A9-Kaba-20?mode=numero",
		DestinationURL: "https://www.cleservice.com/commander/KABA/cle/134/Cl%C3%A9-Kaba-Star?mode=numero",
	},
}
