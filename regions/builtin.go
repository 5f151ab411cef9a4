package regions

import "land-collector/models"

var builtin = []models.Region{
	{
		Name: "강남구", Province: "서울", CortarNo: "1168000000",
		CenterLat: 37.5172, CenterLon: 127.0473,
		Bounds:          models.Bounds{North: 37.555, South: 37.470, East: 127.085, West: 127.005},
		Keywords:        []string{"강남", "역삼", "개포", "논현", "압구정", "청담", "삼성", "대치", "신사", "도곡"},
		ExcludeKeywords: []string{"마포", "용산", "종로", "중구"},
	},
	{
		Name: "서초구", Province: "서울", CortarNo: "1165000000",
		CenterLat: 37.495, CenterLon: 127.015,
		Bounds:          models.Bounds{North: 37.520, South: 37.470, East: 127.050, West: 126.980},
		Keywords:        []string{"서초", "방배", "잠원", "반포", "내곡", "양재", "우면"},
		ExcludeKeywords: []string{"강남", "송파", "관악"},
	},
	{
		Name: "송파구", Province: "서울", CortarNo: "1171000000",
		CenterLat: 37.505, CenterLon: 127.115,
		Bounds:          models.Bounds{North: 37.530, South: 37.480, East: 127.150, West: 127.080},
		Keywords:        []string{"잠실", "송파", "문정", "가락", "석촌", "방이", "오금"},
		ExcludeKeywords: []string{"강남", "서초", "강동"},
	},
	{
		Name: "마포구", Province: "서울", CortarNo: "1144000000",
		CenterLat: 37.555, CenterLon: 126.925,
		Bounds:          models.Bounds{North: 37.580, South: 37.530, East: 126.960, West: 126.890},
		Keywords:        []string{"홍대", "상수", "합정", "망원", "연남", "성산", "마포"},
		ExcludeKeywords: []string{"강남", "용산", "서대문"},
	},
	{
		Name: "영등포구", Province: "서울", CortarNo: "1156000000",
		CenterLat: 37.525, CenterLon: 126.900,
		Bounds:          models.Bounds{North: 37.545, South: 37.505, East: 126.925, West: 126.875},
		Keywords:        []string{"여의도", "영등포", "당산", "선유도", "문래"},
		ExcludeKeywords: []string{"구로", "관악", "동작"},
	},
	{
		Name: "용산구", Province: "서울", CortarNo: "1117000000",
		CenterLat: 37.535, CenterLon: 126.985,
		Bounds:          models.Bounds{North: 37.555, South: 37.515, East: 127.010, West: 126.960},
		Keywords:        []string{"용산", "한남", "이태원", "청파", "원효", "효창"},
		ExcludeKeywords: []string{"강남", "마포", "중구"},
	},
	{
		Name: "해운대구", Province: "부산", CortarNo: "2626000000",
		CenterLat: 35.163, CenterLon: 129.163,
		Bounds:          models.Bounds{North: 35.190, South: 35.136, East: 129.190, West: 129.136},
		Keywords:        []string{"해운대", "마린시티", "센텀시티", "우동", "중동", "좌동", "재송", "반송", "석대", "송정"},
		ExcludeKeywords: []string{"동래", "부산진", "중구", "서구", "영도"},
	},
	{
		Name: "부산진구", Province: "부산", CortarNo: "2623000000",
		CenterLat: 35.163, CenterLon: 129.053,
		Bounds:          models.Bounds{North: 35.180, South: 35.146, East: 129.080, West: 129.026},
		Keywords:        []string{"서면", "전포", "부전", "양정", "연산", "부산진"},
		ExcludeKeywords: []string{"해운대", "동래", "중구"},
	},
	{
		Name: "수성구", Province: "대구", CortarNo: "2729000000",
		CenterLat: 35.858, CenterLon: 128.630,
		Bounds:          models.Bounds{North: 35.880, South: 35.836, East: 128.660, West: 128.600},
		Keywords:        []string{"수성", "범어", "만촌", "황금", "두산", "지산"},
		ExcludeKeywords: []string{"달서", "중구", "동구"},
	},
	{
		Name: "수원시", Province: "경기", CortarNo: "4111100000",
		CenterLat: 37.263, CenterLon: 127.015,
		Bounds:          models.Bounds{North: 37.320, South: 37.206, East: 127.080, West: 126.950},
		Keywords:        []string{"수원", "영통", "팔달", "장안", "권선", "광교", "망포"},
		ExcludeKeywords: []string{"용인", "성남", "화성"},
	},
	{
		Name: "성남시", Province: "경기", CortarNo: "4113100000",
		CenterLat: 37.420, CenterLon: 127.130,
		Bounds:          models.Bounds{North: 37.460, South: 37.380, East: 127.170, West: 127.090},
		Keywords:        []string{"분당", "판교", "성남", "수내", "정자", "서현", "야탑"},
		ExcludeKeywords: []string{"용인", "광주", "하남"},
	},
	{
		Name: "용인시", Province: "경기", CortarNo: "4146100000",
		CenterLat: 37.240, CenterLon: 127.180,
		Bounds:          models.Bounds{North: 37.320, South: 37.160, East: 127.260, West: 127.100},
		Keywords:        []string{"용인", "기흥", "수지", "처인", "동백", "죽전"},
		ExcludeKeywords: []string{"성남", "수원", "안성"},
	},
	{
		Name: "연수구", Province: "인천", CortarNo: "2818500000",
		CenterLat: 37.410, CenterLon: 126.678,
		Bounds:          models.Bounds{North: 37.430, South: 37.390, East: 126.700, West: 126.656},
		Keywords:        []string{"연수", "송도", "청학", "옥련"},
		ExcludeKeywords: []string{"남동", "중구", "서구"},
	},
}
